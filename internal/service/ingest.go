package service

import (
	"context"
	"fmt"
	"time"

	"KBOResultSync/internal/adapter/filedump"
	"KBOResultSync/internal/adapter/httpdump"
	"KBOResultSync/internal/builder"
	"KBOResultSync/internal/config"
	"KBOResultSync/internal/dedup"
	"KBOResultSync/internal/interfaces"
	"KBOResultSync/internal/model"
	"KBOResultSync/internal/resolver"
	"KBOResultSync/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IngestReport 배치 1회의 처리 결과（로그 상관용 배치 ID 포함）
type IngestReport struct {
	BatchID   string   `json:"batch_id"`
	Date      string   `json:"date"`
	Source    string   `json:"source,omitempty"`
	Received  int      `json:"received"`  // 전달받은 원시 후보 수
	Filtered  int      `json:"filtered"`  // 종료 외 상태로 걸러진 수
	Skipped   int      `json:"skipped"`   // 생성 실패로 건너뛴 수
	Built     int      `json:"built"`     // 정규화 성공 수
	Conflicts []string `json:"conflicts"` // 점수 충돌로 보류된 경기 키
	Persisted int      `json:"persisted"` // 저장된 경기 수
}

// IngestService 원시 배치 → 정규화 → 중복 제거 → 저장 파이프라인.
// 소스 어댑터를 통한 수집 트리거（SyncSource）도 여기서 담당한다
type IngestService struct {
	builder *builder.GameRecordBuilder
	deduper *dedup.Deduplicator
	store   *store.ResultStore
	cfg     *config.Config
	logger  *logrus.Logger
	// 어댑터 팩토리: 소스 추가 시 여기만 늘리면 된다
	adapterFactory map[string]func(sourceCfg *config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter
}

func NewIngestService(st *store.ResultStore, cfg *config.Config, logger *logrus.Logger) *IngestService {
	r := resolver.NewTeamNameResolver(nil)
	return &IngestService{
		builder: builder.NewGameRecordBuilder(r),
		deduper: dedup.NewDeduplicator(),
		store:   st,
		cfg:     cfg,
		logger:  logger,
		adapterFactory: map[string]func(sourceCfg *config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter{
			"filedump": filedump.NewFiledumpAdapter,
			"httpdump": httpdump.NewHTTPDumpAdapter,
		},
	}
}

// Ingest 원시 배치를 처리해 저장까지 수행.
//   - 종료 경기만 남긴다（상태 해석은 이 경계에서 1회）
//   - 생성 실패 건은 원문을 로그에 남기고 건너뛴다（배치 전체 중단 없음）
//   - 점수 충돌 경기는 저장에서 보류하고 나머지 경기는 그대로 저장한다
//     （임의로 승자를 골라 저장하면 이후 통계가 오염되므로）
//   - 저장 오류는 호출자에게 그대로 전파
func (s *IngestService) Ingest(ctx context.Context, date time.Time, raws []model.RawGame, source string) (IngestReport, error) {
	_ = ctx
	report := IngestReport{
		BatchID:   uuid.NewString(),
		Date:      date.Format(model.DateFormat),
		Source:    source,
		Received:  len(raws),
		Conflicts: []string{},
	}
	log := s.logger.WithFields(logrus.Fields{
		"batch_id": report.BatchID,
		"date":     report.Date,
		"source":   source,
	})

	var candidates []model.GameRecord
	for _, raw := range raws {
		if builder.NormalizeStatus(raw.Status) != model.StatusFinal {
			report.Filtered++
			continue
		}
		src := raw.Source
		if src == "" {
			src = source
		}
		rec, err := s.builder.Build(date, raw.AwayTeam, raw.HomeTeam, raw.AwayScore, raw.HomeScore, src)
		if err != nil {
			report.Skipped++
			log.WithError(err).WithFields(logrus.Fields{
				"away_raw":       raw.AwayTeam,
				"home_raw":       raw.HomeTeam,
				"away_score_raw": raw.AwayScore,
				"home_score_raw": raw.HomeScore,
			}).Warn("원시 후보 건너뜀")
			continue
		}
		candidates = append(candidates, rec)
	}
	report.Built = len(candidates)

	set, conflicts := s.deduper.Dedupe(date, candidates)
	for _, c := range conflicts {
		report.Conflicts = append(report.Conflicts, c.Fixture.String())
		log.WithField("fixture", c.Fixture.String()).
			WithField("records", len(c.Records)).
			Warn("점수 충돌 경기 저장 보류")
	}
	report.Persisted = len(set.Records)

	if err := s.store.Persist(date, set); err != nil {
		return report, fmt.Errorf("하루치 저장 실패: %w", err)
	}

	log.WithFields(logrus.Fields{
		"received":  report.Received,
		"filtered":  report.Filtered,
		"skipped":   report.Skipped,
		"persisted": report.Persisted,
		"conflicts": len(report.Conflicts),
	}).Info("배치 처리 완료")
	return report, nil
}

// SyncSource 이름으로 소스 어댑터를 골라 수집 → Ingest까지 수행
func (s *IngestService) SyncSource(ctx context.Context, sourceName string, date time.Time) (IngestReport, error) {
	adapterBuilder, ok := s.adapterFactory[sourceName]
	if !ok {
		return IngestReport{}, fmt.Errorf("지원하지 않는 소스: %s", sourceName)
	}
	sourceCfg, ok := s.cfg.Sources[sourceName]
	if !ok {
		return IngestReport{}, fmt.Errorf("소스 설정 없음: %s", sourceName)
	}
	a := adapterBuilder(&sourceCfg, s.logger)

	raws, err := a.FetchGames(ctx, date)
	if err != nil {
		return IngestReport{}, fmt.Errorf("%s 수집 실패: %w", sourceName, err)
	}
	// 빈 배치도 그대로 처리한다: "그날 경기 없음"은 유효한 상태（휴식일）이며
	// 수집 실패（위의 err）와는 구분된다
	return s.Ingest(ctx, date, raws, a.GetName())
}

// RegisteredSources 등록된 소스 이름 목록
func (s *IngestService) RegisteredSources() []string {
	names := make([]string, 0, len(s.adapterFactory))
	for name := range s.adapterFactory {
		names = append(names, name)
	}
	return names
}
