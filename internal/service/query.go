package service

import (
	"fmt"
	"time"

	"KBOResultSync/internal/model"
	"KBOResultSync/internal/resolver"
	"KBOResultSync/internal/store"

	"github.com/sirupsen/logrus"
)

// QueryService 저장소의 세 가지 조회 연산을 감싸는 서비스.
// 팀 파라미터는 Resolver로 해석하므로 별칭 표기（"히어로즈" 등）도 받는다
type QueryService struct {
	store    *store.ResultStore
	resolver *resolver.TeamNameResolver
	logger   *logrus.Logger
}

func NewQueryService(st *store.ResultStore, logger *logrus.Logger) *QueryService {
	return &QueryService{
		store:    st,
		resolver: resolver.NewTeamNameResolver(nil),
		logger:   logger,
	}
}

// WinnersFor 해당 날짜의 승리팀 프로젝션
func (s *QueryService) WinnersFor(date time.Time) ([]model.WinnerEntry, error) {
	return s.store.WinnersFor(date)
}

// StatsFor 팀 누적 성적. 팀 표기는 먼저 정식 식별자로 해석한다
func (s *QueryService) StatsFor(teamRaw string) (model.TeamStats, error) {
	team, err := s.resolver.Resolve(teamRaw)
	if err != nil {
		return model.TeamStats{}, fmt.Errorf("팀 파라미터 해석 실패: %w", err)
	}
	return s.store.StatsFor(team)
}

// SummaryFor 월간 팀별 요약
func (s *QueryService) SummaryFor(year int, month time.Month) (map[model.Team]store.MonthlyLine, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("잘못된 월: %d", month)
	}
	return s.store.SummaryFor(year, month)
}
