package dedup

import (
	"fmt"
	"time"

	"KBOResultSync/internal/model"
)

// Conflict 같은 경기를 설명하는 레코드들의 점수 불일치（소스 간 충돌）.
// 어느 소스를 믿을지는 정책 판단이므로 여기서 고르지 않고 그대로 보고한다
type Conflict struct {
	Fixture model.FixtureKey
	Records []model.GameRecord
}

func (c Conflict) Error() string {
	return fmt.Sprintf("경기 %s에 점수가 불일치하는 레코드 %d건", c.Fixture, len(c.Records))
}

// Deduplicator 여러 소스/여러 파싱 시도에서 온 후보 레코드를 경기 단위로 축약
type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Dedupe 후보 레코드 열을 경기 키（날짜+무순서 팀 쌍）로 그룹화해
// 경기당 1건으로 축약한 하루치 집합을 만든다.
//   - 그룹 내 점수가 전부 일치하면 먼저 온 레코드 유지（입력 순서가 같으면 결정적）
//   - 점수 비교는 팀 기준（home/away가 뒤집힌 채 점수도 뒤집혀 있으면 일치로 본다）
//   - 불일치 그룹은 Conflict로 보고하고 결과 집합에서 제외（다른 경기는 영향 없음）
func (d *Deduplicator) Dedupe(date time.Time, records []model.GameRecord) (model.DailyResultSet, []Conflict) {
	groups := make(map[model.FixtureKey][]model.GameRecord)
	var order []model.FixtureKey
	for _, rec := range records {
		key := rec.Fixture()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	result := model.NewDailyResultSet(date)
	var conflicts []Conflict
	for _, key := range order {
		group := groups[key]
		first := group[0]
		conflicted := false
		for _, rec := range group[1:] {
			if !sameScores(first, rec) {
				conflicted = true
				break
			}
		}
		if conflicted {
			conflicts = append(conflicts, Conflict{Fixture: key, Records: group})
			continue
		}
		result.Records[key] = first
	}
	return result, conflicts
}

// sameScores 두 레코드의 팀별 득점 일치 여부
func sameScores(a, b model.GameRecord) bool {
	sa, ok := b.ScoreOf(a.AwayTeam)
	if !ok || sa != a.AwayScore {
		return false
	}
	sh, ok := b.ScoreOf(a.HomeTeam)
	if !ok || sh != a.HomeScore {
		return false
	}
	return true
}
