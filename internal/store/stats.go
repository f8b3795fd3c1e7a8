package store

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"KBOResultSync/internal/model"
)

// MonthlyLine 월간 요약의 팀 1행
type MonthlyLine struct {
	Wins    int     `json:"wins"`
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
}

// StatsFor 저장된 전체 날짜를 스캔해 팀 누적 성적 집계.
// 무승부는 경기 수에만 포함（승도 패도 아님）. 경기가 없으면 승률 0.0
func (s *ResultStore) StatsFor(team model.Team) (model.TeamStats, error) {
	stats := model.TeamStats{Team: team}

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return stats, err
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "kbo_results_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		records, err := s.loadDay(filepath.Join(s.dataDir, name))
		if err != nil {
			return stats, err
		}
		for _, rec := range records {
			if rec.AwayTeam != team && rec.HomeTeam != team {
				continue
			}
			stats.TotalGames++
			switch {
			case rec.Winner == team:
				stats.Wins++
			case rec.IsDraw():
				// 무승부: 경기 수만 카운트
			default:
				stats.Losses++
			}
		}
	}

	if stats.TotalGames > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.TotalGames)
	}
	return stats, nil
}

// SummaryFor 한 달치 팀별 {승수, 경기 수, 승률} 요약.
// 날짜에서 경로를 유도할 수 있으므로 해당 월의 날짜를 직접 순회한다
func (s *ResultStore) SummaryFor(year int, month time.Month) (map[model.Team]MonthlyLine, error) {
	summary := make(map[model.Team]MonthlyLine)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		records, err := s.loadDay(s.resultsPath(d))
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			for _, team := range []model.Team{rec.AwayTeam, rec.HomeTeam} {
				line := summary[team]
				line.Games++
				if rec.Winner == team {
					line.Wins++
				}
				summary[team] = line
			}
		}
	}

	for team, line := range summary {
		if line.Games > 0 {
			line.WinRate = float64(line.Wins) / float64(line.Games)
		}
		summary[team] = line
	}
	return summary, nil
}
