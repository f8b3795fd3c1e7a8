package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"KBOResultSync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
}

func record(date time.Time, away, home model.Team, awayScore, homeScore int) model.GameRecord {
	winner := model.Draw
	if awayScore > homeScore {
		winner = away
	} else if homeScore > awayScore {
		winner = home
	}
	return model.GameRecord{
		Date:      date,
		DateStr:   date.Format(model.DateFormat),
		AwayTeam:  away,
		HomeTeam:  home,
		AwayScore: awayScore,
		HomeScore: homeScore,
		Winner:    winner,
	}
}

func resultSet(date time.Time, records ...model.GameRecord) model.DailyResultSet {
	set := model.NewDailyResultSet(date)
	for _, rec := range records {
		set.Records[rec.Fixture()] = rec
	}
	return set
}

func newTestStore(t *testing.T, opts Options) *ResultStore {
	t.Helper()
	st, err := NewResultStore(t.TempDir(), opts, nil)
	require.NoError(t, err)
	return st
}

func TestPersistWritesDateDerivedFiles(t *testing.T) {
	st := newTestStore(t, Options{ExportCSV: true})
	date := testDate()

	set := resultSet(date, record(date, model.TeamKIA, model.TeamLG, 5, 3))
	require.NoError(t, st.Persist(date, set))

	// 날짜만으로 경로가 유도되는 고정 명명 규칙
	for _, name := range []string{"kbo_results_20241015.json", "winners_20241015.json", "kbo_results_20241015.csv"} {
		_, err := os.Stat(filepath.Join(st.dataDir, name))
		assert.NoError(t, err, name)
	}

	// 임시 파일이 남아 있으면 안 된다
	entries, err := os.ReadDir(st.dataDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp", "임시 파일 잔재")
	}
}

func TestWinnersForExcludesDrawsByDefault(t *testing.T) {
	st := newTestStore(t, Options{})
	date := testDate()

	set := resultSet(date,
		record(date, model.TeamKIA, model.TeamLG, 5, 3),
		record(date, model.TeamNC, model.TeamSSG, 4, 4), // 무승부
	)
	require.NoError(t, st.Persist(date, set))

	winners, err := st.WinnersFor(date)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, model.TeamKIA, winners[0].Winner)
	assert.Equal(t, "2024-10-15", winners[0].Date)
	assert.Equal(t, "KIA vs LG", winners[0].Game)
}

func TestWinnersForIncludesDrawsWhenConfigured(t *testing.T) {
	st := newTestStore(t, Options{IncludeDraws: true})
	date := testDate()

	set := resultSet(date,
		record(date, model.TeamKIA, model.TeamLG, 5, 3),
		record(date, model.TeamNC, model.TeamSSG, 4, 4),
	)
	require.NoError(t, st.Persist(date, set))

	winners, err := st.WinnersFor(date)
	require.NoError(t, err)
	require.Len(t, winners, 2)

	var hasDraw bool
	for _, w := range winners {
		if w.Winner == model.Draw {
			hasDraw = true
		}
	}
	assert.True(t, hasDraw, "무승부 항목이 포함되어야 함")
}

func TestWinnersForMissingDate(t *testing.T) {
	st := newTestStore(t, Options{})

	winners, err := st.WinnersFor(testDate())
	require.NoError(t, err)
	assert.Empty(t, winners, "저장된 적 없는 날짜는 빈 목록")
}

func TestPersistIdempotent(t *testing.T) {
	st := newTestStore(t, Options{})
	date := testDate()
	set := resultSet(date, record(date, model.TeamKIA, model.TeamLG, 5, 3))

	require.NoError(t, st.Persist(date, set))
	winnersOnce, err := st.WinnersFor(date)
	require.NoError(t, err)
	statsOnce, err := st.StatsFor(model.TeamKIA)
	require.NoError(t, err)

	require.NoError(t, st.Persist(date, set))
	winnersTwice, err := st.WinnersFor(date)
	require.NoError(t, err)
	statsTwice, err := st.StatsFor(model.TeamKIA)
	require.NoError(t, err)

	assert.Equal(t, winnersOnce, winnersTwice)
	assert.Equal(t, statsOnce, statsTwice)
}

func TestPersistReplacesWholeDate(t *testing.T) {
	st := newTestStore(t, Options{})
	date := testDate()

	first := resultSet(date,
		record(date, model.TeamKIA, model.TeamLG, 5, 3),
		record(date, model.TeamNC, model.TeamSSG, 2, 1),
	)
	require.NoError(t, st.Persist(date, first))

	// 정정 입력으로 재수집: 날짜 전체가 새 집합으로 교체된다
	second := resultSet(date, record(date, model.TeamKIA, model.TeamLG, 3, 5))
	require.NoError(t, st.Persist(date, second))

	winners, err := st.WinnersFor(date)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, model.TeamLG, winners[0].Winner)
}

func TestStatsForZeroGames(t *testing.T) {
	st := newTestStore(t, Options{})

	stats, err := st.StatsFor(model.TeamKiwoom)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalGames)
	assert.Equal(t, 0.0, stats.WinRate, "0으로 나누지 않음")
}

func TestStatsForAcrossDates(t *testing.T) {
	st := newTestStore(t, Options{})

	d1 := testDate()
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)
	require.NoError(t, st.Persist(d1, resultSet(d1, record(d1, model.TeamKIA, model.TeamLG, 5, 3))))
	require.NoError(t, st.Persist(d2, resultSet(d2, record(d2, model.TeamLG, model.TeamKIA, 7, 2))))
	require.NoError(t, st.Persist(d3, resultSet(d3, record(d3, model.TeamKIA, model.TeamNC, 4, 4))))

	stats, err := st.StatsFor(model.TeamKIA)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Losses, "무승부는 패로 세지 않음")
	assert.InDelta(t, 1.0/3.0, stats.WinRate, 1e-9)
}

func TestSummaryForRestrictsToMonth(t *testing.T) {
	st := newTestStore(t, Options{})

	inMonth := time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
	otherMonth := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.Persist(inMonth, resultSet(inMonth, record(inMonth, model.TeamKIA, model.TeamLG, 5, 3))))
	require.NoError(t, st.Persist(otherMonth, resultSet(otherMonth, record(otherMonth, model.TeamKIA, model.TeamNC, 1, 2))))

	summary, err := st.SummaryFor(2024, time.October)
	require.NoError(t, err)

	require.Contains(t, summary, model.TeamKIA)
	assert.Equal(t, MonthlyLine{Wins: 1, Games: 1, WinRate: 1.0}, summary[model.TeamKIA])
	assert.Equal(t, MonthlyLine{Wins: 0, Games: 1, WinRate: 0.0}, summary[model.TeamLG])
	assert.NotContains(t, summary, model.TeamNC, "다른 달의 경기는 제외")
}

func TestCSVExportHasBOMAndHeader(t *testing.T) {
	st := newTestStore(t, Options{ExportCSV: true})
	date := testDate()
	require.NoError(t, st.Persist(date, resultSet(date, record(date, model.TeamKIA, model.TeamLG, 5, 3))))

	data, err := os.ReadFile(st.csvPath(date))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xef\xbb\xbf"), "엑셀 호환 BOM")
	assert.Contains(t, content, "date,away_team,home_team,away_score,home_score,winner,source")
	assert.Contains(t, content, "2024-10-15,KIA,LG,5,3,KIA,")
}
