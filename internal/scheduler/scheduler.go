package scheduler

import (
	"context"
	"time"

	"KBOResultSync/internal/config"
	"KBOResultSync/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler 일일 수집 스케줄러.
// 설정된 Cron 시각（기본 매일 10:00）에 활성 소스마다 어제 경기를 수집한다.
// 어댑터의 일시 장애 재시도는 수집기 쪽 책임이므로 여기서는 로그만 남긴다
type Scheduler struct {
	cron          *cron.Cron
	ingestService *service.IngestService
	cfg           *config.Config
	logger        *logrus.Logger
}

func NewScheduler(ingestService *service.IngestService, cfg *config.Config, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		ingestService: ingestService,
		cfg:           cfg,
		logger:        logger,
	}
}

// Start 스케줄 등록 후 백그라운드 시작. 실패는 프로세스를 죽이지 않는다
func (s *Scheduler) Start() error {
	if len(s.cfg.Sync.EnabledSources) == 0 {
		s.logger.Info("활성 소스가 없어 스케줄러를 시작하지 않음")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Sync.Cron, s.runDaily)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.WithFields(logrus.Fields{
		"cron":    s.cfg.Sync.Cron,
		"sources": s.cfg.Sync.EnabledSources,
	}).Info("일일 수집 스케줄러 시작")
	return nil
}

// Stop 진행 중인 작업 완료를 기다린 뒤 정지
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("스케줄러 정지")
}

// runDaily 어제 날짜를 대상으로 활성 소스 전체 수집.
// 소스 1개의 실패가 다른 소스의 수집을 막지 않는다
func (s *Scheduler) runDaily() {
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	for _, sourceName := range s.cfg.Sync.EnabledSources {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		report, err := s.ingestService.SyncSource(ctx, sourceName, date)
		cancel()
		if err != nil {
			s.logger.WithError(err).WithField("source", sourceName).Error("정기 수집 실패")
			continue
		}
		s.logger.WithFields(logrus.Fields{
			"source":    sourceName,
			"date":      report.Date,
			"persisted": report.Persisted,
			"skipped":   report.Skipped,
		}).Info("정기 수집 완료")
	}
}
