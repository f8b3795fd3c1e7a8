package dedup

import (
	"testing"
	"time"

	"KBOResultSync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC)
}

func record(away, home model.Team, awayScore, homeScore int, source string) model.GameRecord {
	winner := model.Draw
	if awayScore > homeScore {
		winner = away
	} else if homeScore > awayScore {
		winner = home
	}
	return model.GameRecord{
		Date:      testDate(),
		DateStr:   testDate().Format(model.DateFormat),
		AwayTeam:  away,
		HomeTeam:  home,
		AwayScore: awayScore,
		HomeScore: homeScore,
		Winner:    winner,
		Source:    source,
	}
}

func TestDedupeFirstSeenWins(t *testing.T) {
	d := NewDeduplicator()

	records := []model.GameRecord{
		record(model.TeamKIA, model.TeamLG, 5, 3, "naver"),
		record(model.TeamKIA, model.TeamLG, 5, 3, "kbo"),
	}
	set, conflicts := d.Dedupe(testDate(), records)

	require.Empty(t, conflicts)
	require.Len(t, set.Records, 1)
	for _, rec := range set.Records {
		assert.Equal(t, "naver", rec.Source, "먼저 온 레코드가 유지되어야 함")
	}
}

func TestDedupeOrientationAwareAgreement(t *testing.T) {
	d := NewDeduplicator()

	// home/away가 뒤집힌 채 점수도 뒤집혀 있으면 같은 결과로 본다
	records := []model.GameRecord{
		record(model.TeamKIA, model.TeamLG, 5, 3, "a"),
		record(model.TeamLG, model.TeamKIA, 3, 5, "b"),
	}
	set, conflicts := d.Dedupe(testDate(), records)

	require.Empty(t, conflicts)
	require.Len(t, set.Records, 1)
}

func TestDedupeConflictIsolated(t *testing.T) {
	d := NewDeduplicator()

	records := []model.GameRecord{
		record(model.TeamKIA, model.TeamLG, 5, 3, "a"),
		record(model.TeamKIA, model.TeamLG, 6, 3, "b"), // 점수 불일치
		record(model.TeamNC, model.TeamSSG, 4, 4, "a"), // 무관한 다른 경기
	}
	set, conflicts := d.Dedupe(testDate(), records)

	require.Len(t, conflicts, 1)
	assert.Equal(t, model.TeamKIA, conflicts[0].Fixture.TeamA)
	assert.Len(t, conflicts[0].Records, 2)

	// 충돌 경기는 제외, 나머지는 영향 없음
	require.Len(t, set.Records, 1)
	for _, rec := range set.Records {
		assert.Equal(t, model.TeamNC, rec.AwayTeam)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	d := NewDeduplicator()

	records := []model.GameRecord{
		record(model.TeamKIA, model.TeamLG, 5, 3, "a"),
		record(model.TeamKIA, model.TeamLG, 5, 3, "b"),
		record(model.TeamNC, model.TeamSSG, 4, 4, "a"),
	}
	once, conflicts := d.Dedupe(testDate(), records)
	require.Empty(t, conflicts)

	twice, conflicts := d.Dedupe(testDate(), once.SortedRecords())
	require.Empty(t, conflicts)
	assert.Equal(t, once.Records, twice.Records)
}

func TestDedupeEmptyInput(t *testing.T) {
	d := NewDeduplicator()

	set, conflicts := d.Dedupe(testDate(), nil)
	assert.Empty(t, conflicts)
	assert.Empty(t, set.Records, "경기 없는 날도 유효한 결과")
}
