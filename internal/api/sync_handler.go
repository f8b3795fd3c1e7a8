package api

import (
	"net/http"
	"time"

	"KBOResultSync/internal/adapter"
	"KBOResultSync/internal/config"
	"KBOResultSync/internal/model"
	"KBOResultSync/internal/service"
	"KBOResultSync/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	ingestService *service.IngestService
	logger        *logrus.Logger
}

func NewSyncHandler(st *store.ResultStore, logger *logrus.Logger, cfg *config.Config) *SyncHandler {
	return &SyncHandler{
		ingestService: service.NewIngestService(st, cfg, logger),
		logger:        logger,
	}
}

// SyncSourceHandler 지정 소스에서 수집해 하루치 결과를 갱신
// @Summary 소스 수집 트리거
// @Param source path string true "소스 이름（filedump/httpdump）"
// @Param date query string false "대상 날짜 YYYY-MM-DD（기본 어제）"
// @Success 200 {object} service.IngestReport
// @Failure 500 {object} map[string]string
// @Router /sync/source/{source} [post]
func (h *SyncHandler) SyncSourceHandler(c *gin.Context) {
	sourceName := c.Param("source")
	date, err := targetDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.ingestService.SyncSource(c.Request.Context(), sourceName, date)
	if err != nil {
		h.logger.Errorf("%s 수집 실패: %v", sourceName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// IngestBatchHandler 외부 수집기가 원시 배치를 직접 밀어넣는 엔드포인트.
// 본문은 덤프 문서와 같은 형식（소스별 키 변형 허용）
// @Router /api/results/{date} [post]
func (h *SyncHandler) IngestBatchHandler(c *gin.Context) {
	date, err := time.Parse(model.DateFormat, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "날짜 형식은 YYYY-MM-DD"})
		return
	}

	raws, err := adapter.DecodeRawGames(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.ingestService.Ingest(c.Request.Context(), date, raws, c.Query("source"))
	if err != nil {
		h.logger.WithError(err).Error("배치 직접 입력 실패")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// targetDate 날짜 파라미터 해석. 생략 시 어제（하루 1회 수집 운영 모델）
func targetDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1), nil
	}
	return time.Parse(model.DateFormat, raw)
}
