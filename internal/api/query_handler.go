package api

import (
	"net/http"
	"strconv"
	"time"

	"KBOResultSync/internal/model"
	"KBOResultSync/internal/resolver"
	"KBOResultSync/internal/service"
	"KBOResultSync/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// QueryHandler 조회 전용 엔드포인트（승리팀/팀 성적/월간 요약）
type QueryHandler struct {
	queryService *service.QueryService
	logger       *logrus.Logger
}

func NewQueryHandler(st *store.ResultStore, logger *logrus.Logger) *QueryHandler {
	return &QueryHandler{
		queryService: service.NewQueryService(st, logger),
		logger:       logger,
	}
}

// WinnersHandler 해당 날짜의 승리팀 목록
// GET /api/winners/:date
func (h *QueryHandler) WinnersHandler(c *gin.Context) {
	date, err := time.Parse(model.DateFormat, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "날짜 형식은 YYYY-MM-DD"})
		return
	}

	winners, err := h.queryService.WinnersFor(date)
	if err != nil {
		h.logger.WithError(err).Error("승리팀 조회 실패")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date.Format(model.DateFormat),
		"winners": winners,
	})
}

// TeamStatsHandler 팀 누적 성적（별칭 표기 허용）
// GET /api/teams/:team/stats
func (h *QueryHandler) TeamStatsHandler(c *gin.Context) {
	stats, err := h.queryService.StatsFor(c.Param("team"))
	if err != nil {
		if resolver.IsResolutionError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("팀 성적 조회 실패")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SummaryHandler 월간 팀별 요약
// GET /api/summary/:year/:month
func (h *QueryHandler) SummaryHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "연도는 숫자"})
		return
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "월은 1~12"})
		return
	}

	summary, err := h.queryService.SummaryFor(year, time.Month(monthNum))
	if err != nil {
		h.logger.WithError(err).Error("월간 요약 조회 실패")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":    year,
		"month":   monthNum,
		"summary": summary,
	})
}
