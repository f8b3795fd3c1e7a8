package main

import (
	"fmt"
	"log"

	"KBOResultSync/internal/api"
	"KBOResultSync/internal/config"
	"KBOResultSync/internal/scheduler"
	"KBOResultSync/internal/service"
	"KBOResultSync/internal/store"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. 설정 파일 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("설정 파일 로드 실패: %v", err)
	}

	// 2. 로거 초기화
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.InfoLevel)
	logrusLogger.Info("설정 파일 로드 성공")

	// 3. 결과 저장소 초기화（데이터 디렉터리 없으면 생성）
	resultStore, err := store.NewResultStore(cfg.Storage.DataDir, store.Options{
		IncludeDraws: cfg.Storage.IncludeDraws,
		ExportCSV:    cfg.Storage.ExportCSV,
	}, logrusLogger)
	if err != nil {
		logrusLogger.Fatalf("결과 저장소 초기화 실패: %v", err)
	}
	logrusLogger.WithField("data_dir", cfg.Storage.DataDir).Info("결과 저장소 준비 완료")

	// 4. 일일 수집 스케줄러 시작（활성 소스가 있을 때만）
	ingestService := service.NewIngestService(resultStore, cfg, logrusLogger)
	sched := scheduler.NewScheduler(ingestService, cfg, logrusLogger)
	if err := sched.Start(); err != nil {
		logrusLogger.Fatalf("스케줄러 시작 실패: %v", err)
	}
	defer sched.Stop()

	// 5. Gin 실행 모드 설정（debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// pprof 등록（성능 문제 진단용）
	pprof.Register(r)
	logrusLogger.Infof("Gin 실행 모드: %s", cfg.Server.Mode)

	// 6. API 라우트 등록
	syncHandler := api.NewSyncHandler(resultStore, logrusLogger, cfg)
	r.POST("/sync/source/:source", syncHandler.SyncSourceHandler)
	r.POST("/api/results/:date", syncHandler.IngestBatchHandler)

	// 조회 인터페이스（승리팀/팀 성적/월간 요약）
	queryHandler := api.NewQueryHandler(resultStore, logrusLogger)
	r.GET("/api/winners/:date", queryHandler.WinnersHandler)
	r.GET("/api/teams/:team/stats", queryHandler.TeamStatsHandler)
	r.GET("/api/summary/:year/:month", queryHandler.SummaryHandler)

	// 7. 서비스 시작
	port := cfg.Server.Port
	logrusLogger.Infof("서비스 시작, 포트: %d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		logrusLogger.Fatalf("서비스 시작 실패: %v", err)
	}
}
