package builder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"KBOResultSync/internal/model"
	"KBOResultSync/internal/resolver"
)

// Side 실패가 발생한 쪽（로그로 업스트림 크롤러 드리프트를 추적하기 위함）
type Side string

const (
	SideAway Side = "away"
	SideHome Side = "home"
)

// FailureKind 레코드 생성 실패 종류
type FailureKind string

const (
	TeamUnresolved   FailureKind = "TEAM_UNRESOLVED"
	SameTeam         FailureKind = "SAME_TEAM"
	ScoreUnparseable FailureKind = "SCORE_UNPARSEABLE"
)

// BuildError 레코드 1건의 생성 실패. 배치 전체를 중단시키지 않고
// 해당 건만 건너뛰는 것이 호출 측의 규약
type BuildError struct {
	Kind FailureKind
	Side Side   // TeamUnresolved / ScoreUnparseable일 때 어느 쪽인지
	Raw  string // 문제가 된 원문（진단용）
	Err  error  // Resolver가 돌려준 하위 오류（있으면）
}

func (e *BuildError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("레코드 생성 실패 [%s/%s] 원문=%q", e.Kind, e.Side, e.Raw)
	}
	return fmt.Sprintf("레코드 생성 실패 [%s] 원문=%q", e.Kind, e.Raw)
}

func (e *BuildError) Unwrap() error { return e.Err }

var digitRun = regexp.MustCompile(`\d+`)

// ParseScore 점수 토큰에서 첫 연속 숫자열을 추출.
// ": 7", "7회" 같은 접두/접미 잡문자를 허용하고, 숫자가 없으면 ok=false
func ParseScore(raw string) (int, bool) {
	m := digitRun.FindString(raw)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// \d+에 매칭된 이상 실패는 자릿수 초과뿐
		return 0, false
	}
	return n, true
}

// NormalizeStatus 상태 원문을 정규화. 빈 문자열은 종료로 간주（결과 페이지 관례）
func NormalizeStatus(raw string) model.GameStatus {
	status := strings.ToLower(strings.TrimSpace(raw))
	if status == "" {
		return model.StatusFinal
	}
	switch {
	case containsAny(status, "종료", "final", "f", "경기끝"):
		return model.StatusFinal
	case containsAny(status, "취소", "cancel", "우천"):
		return model.StatusCanceled
	case containsAny(status, "연기", "postpone"):
		return model.StatusPostponed
	default:
		return model.StatusInProgress
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// GameRecordBuilder 원시 필드（팀 표기 2개 + 점수 토큰 2개）를 검증해
// 정규화 레코드를 생성. 순수 함수이며 상태 문자열 해석은 하지 않는다
// （종료 경기만 넘기는 것은 호출 측 책임）
type GameRecordBuilder struct {
	resolver *resolver.TeamNameResolver
}

// NewGameRecordBuilder Resolver를 주입해 Builder 생성
func NewGameRecordBuilder(r *resolver.TeamNameResolver) *GameRecordBuilder {
	if r == nil {
		r = resolver.NewTeamNameResolver(nil)
	}
	return &GameRecordBuilder{resolver: r}
}

// Build 원시 필드로부터 GameRecord 생성.
// 승자는 점수에서만 유도: 원정 우세→원정 승, 홈 우세→홈 승, 동점→무승부.
// 동점은 정당한 결과이지 오류가 아니다
func (b *GameRecordBuilder) Build(date time.Time, awayRaw, homeRaw, awayScoreRaw, homeScoreRaw, source string) (model.GameRecord, error) {
	away, err := b.resolver.Resolve(awayRaw)
	if err != nil {
		return model.GameRecord{}, &BuildError{Kind: TeamUnresolved, Side: SideAway, Raw: awayRaw, Err: err}
	}
	home, err := b.resolver.Resolve(homeRaw)
	if err != nil {
		return model.GameRecord{}, &BuildError{Kind: TeamUnresolved, Side: SideHome, Raw: homeRaw, Err: err}
	}
	if away == home {
		// 원정/홈이 같은 부분 문자열에 매칭된 원시 텍스트 방어
		return model.GameRecord{}, &BuildError{Kind: SameTeam, Raw: awayRaw + " / " + homeRaw}
	}

	awayScore, ok := ParseScore(awayScoreRaw)
	if !ok {
		return model.GameRecord{}, &BuildError{Kind: ScoreUnparseable, Side: SideAway, Raw: awayScoreRaw}
	}
	homeScore, ok := ParseScore(homeScoreRaw)
	if !ok {
		return model.GameRecord{}, &BuildError{Kind: ScoreUnparseable, Side: SideHome, Raw: homeScoreRaw}
	}

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
		Source:    source,
	}, nil
}
