package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"KBOResultSync/internal/model"

	"github.com/sirupsen/logrus"
)

// ResultStore 날짜 단위 결과 파일 저장소.
// 날짜만 알면 파일 경로를 계산할 수 있는 고정 명명 규칙을 쓰며（인덱스 파일 없음）,
// 쓰기는 임시 파일 + rename으로 날짜 전체를 원자적으로 교체한다.
// 같은 날짜에 대한 동시 Persist는 프로세스 내 날짜별 락으로 직렬화하고,
// 프로세스 간 락은 제공하지 않는다（하루 1회 수집 운영 모델）
type ResultStore struct {
	dataDir      string
	includeDraws bool // 승리팀 프로젝션에 무승부 항목을 포함할지
	exportCSV    bool
	logger       *logrus.Logger

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex
}

// Options 저장소 동작 옵션
type Options struct {
	IncludeDraws bool // 기본 false: 승리팀 프로젝션에서 무승부 제외
	ExportCSV    bool
}

// NewResultStore 데이터 디렉터리를 보장하고 저장소 생성
func NewResultStore(dataDir string, opts Options, logger *logrus.Logger) (*ResultStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("데이터 디렉터리 생성 실패 %s: %w", dataDir, err)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ResultStore{
		dataDir:      dataDir,
		includeDraws: opts.IncludeDraws,
		exportCSV:    opts.ExportCSV,
		logger:       logger,
		dateLocks:    make(map[string]*sync.Mutex),
	}, nil
}

// resultsPath 하루치 결과 파일 경로（날짜에서 유도）
func (s *ResultStore) resultsPath(date time.Time) string {
	return filepath.Join(s.dataDir, "kbo_results_"+date.Format(model.DateFormatFile)+".json")
}

// winnersPath 승리팀 프로젝션 파일 경로
func (s *ResultStore) winnersPath(date time.Time) string {
	return filepath.Join(s.dataDir, "winners_"+date.Format(model.DateFormatFile)+".json")
}

func (s *ResultStore) csvPath(date time.Time) string {
	return filepath.Join(s.dataDir, "kbo_results_"+date.Format(model.DateFormatFile)+".csv")
}

// lockFor 날짜별 락（프로세스 내 직렬화）
func (s *ResultStore) lockFor(date time.Time) *sync.Mutex {
	key := date.Format(model.DateFormatFile)
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.dateLocks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.dateLocks[key] = l
	return l
}

// Persist 하루치 결과 집합을 저장. 같은 날짜의 기존 파일은 통째로 교체（멱등）.
// 승리팀 프로젝션도 함께 유도/저장한다. 부분 쓰기가 노출되지 않도록
// 각 파일은 임시 파일에 쓴 뒤 rename으로 공개한다
func (s *ResultStore) Persist(date time.Time, set model.DailyResultSet) error {
	l := s.lockFor(date)
	l.Lock()
	defer l.Unlock()

	records := set.SortedRecords()
	if err := s.writeJSONAtomic(s.resultsPath(date), records); err != nil {
		return fmt.Errorf("결과 파일 저장 실패: %w", err)
	}

	winners := s.projectWinners(date, records)
	if err := s.writeJSONAtomic(s.winnersPath(date), winners); err != nil {
		return fmt.Errorf("승리팀 파일 저장 실패: %w", err)
	}

	if s.exportCSV {
		if err := s.writeCSVAtomic(s.csvPath(date), records); err != nil {
			return fmt.Errorf("CSV 저장 실패: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"date":    date.Format(model.DateFormat),
		"records": len(records),
		"winners": len(winners),
	}).Info("하루치 결과 저장 완료")
	return nil
}

// projectWinners 승리팀 프로젝션 유도. includeDraws가 꺼져 있으면 무승부 경기는 제외
func (s *ResultStore) projectWinners(date time.Time, records []model.GameRecord) []model.WinnerEntry {
	winners := make([]model.WinnerEntry, 0, len(records))
	for _, rec := range records {
		if rec.IsDraw() && !s.includeDraws {
			continue
		}
		winners = append(winners, model.WinnerEntry{
			Date:   date.Format(model.DateFormat),
			Winner: rec.Winner,
			Game:   fmt.Sprintf("%s vs %s", rec.AwayTeam, rec.HomeTeam),
		})
	}
	return winners
}

// WinnersFor 저장된 승리팀 프로젝션 조회. 파일이 없으면 빈 목록（오류 아님）
func (s *ResultStore) WinnersFor(date time.Time) ([]model.WinnerEntry, error) {
	data, err := os.ReadFile(s.winnersPath(date))
	if os.IsNotExist(err) {
		return []model.WinnerEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("승리팀 파일 읽기 실패: %w", err)
	}
	var winners []model.WinnerEntry
	if err := json.Unmarshal(data, &winners); err != nil {
		return nil, fmt.Errorf("승리팀 파일 파싱 실패: %w", err)
	}
	return winners, nil
}

// loadDay 하루치 결과 파일 로드. 파일이 없으면 nil（오류 아님）
func (s *ResultStore) loadDay(path string) ([]model.GameRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("결과 파일 읽기 실패 %s: %w", path, err)
	}
	var records []model.GameRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("결과 파일 파싱 실패 %s: %w", path, err)
	}
	return records, nil
}

// writeJSONAtomic 같은 디렉터리의 임시 파일에 쓴 뒤 rename으로 교체
func (s *ResultStore) writeJSONAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return s.replaceFile(path, data)
}

// writeCSVAtomic 엑셀 호환을 위해 UTF-8 BOM을 붙여 저장
func (s *ResultStore) writeCSVAtomic(path string, records []model.GameRecord) error {
	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"date", "away_team", "home_team", "away_score", "home_score", "winner", "source"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.DateStr,
			string(rec.AwayTeam), string(rec.HomeTeam),
			strconv.Itoa(rec.AwayScore), strconv.Itoa(rec.HomeScore),
			string(rec.Winner), rec.Source,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return s.replaceFile(path, buf.Bytes())
}

// replaceFile 임시 파일 경유 원자적 교체. rename 실패 시 임시 파일은 치운다
func (s *ResultStore) replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
