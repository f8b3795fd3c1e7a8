package resolver

import (
	"errors"
	"fmt"
	"strings"

	"KBOResultSync/internal/model"
)

// 해석 실패 종류. 호출 측은 errors.Is로 구분해 해당 건만 건너뛴다
var (
	ErrEmptyInput  = errors.New("빈 입력")
	ErrUnknownTeam = errors.New("알 수 없는 팀")
)

// IsResolutionError 해석 실패（빈 입력/알 수 없는 팀）여부 판정
func IsResolutionError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrUnknownTeam)
}

// TeamNameResolver 자유 표기 팀 명칭（약칭/전체 명칭/부분 표기）을 정식 팀으로 해석.
// 별칭 테이블은 생성 시 1회 주입하며 이후 불변（순수 함수, I/O 없음）
type TeamNameResolver struct {
	table   model.AliasTable
	ordered []string // 길이 내림차순 별칭 목록（생성 시 1회 계산）
}

// NewTeamNameResolver 별칭 테이블을 주입해 Resolver 생성.
// nil이면 표준 테이블을 사용한다
func NewTeamNameResolver(table model.AliasTable) *TeamNameResolver {
	if table == nil {
		table = model.DefaultAliasTable()
	}
	return &TeamNameResolver{
		table:   table,
		ordered: table.AliasesByLength(),
	}
}

// Resolve 원문 토큰을 정식 팀으로 해석.
// 1) 공백 제거 후 빈 문자열이면 ErrEmptyInput
// 2) 완전 일치 우선
// 3) 긴 별칭부터 "별칭⊂입력" → "입력⊂별칭" 순서로 부분일치 판정
//    （긴 별칭 우선이므로 짧은 별칭이 긴 문자열 안에서 오인 매칭되지 않음）
// 4) 실패 시 ErrUnknownTeam — 원문을 그대로 돌려주는 일은 절대 없다
func (r *TeamNameResolver) Resolve(raw string) (model.Team, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", fmt.Errorf("팀 명칭 해석 실패: %w", ErrEmptyInput)
	}

	if team, ok := r.table[cleaned]; ok {
		return team, nil
	}

	for _, alias := range r.ordered {
		if strings.Contains(cleaned, alias) {
			return r.table[alias], nil
		}
	}
	for _, alias := range r.ordered {
		if strings.Contains(alias, cleaned) {
			return r.table[alias], nil
		}
	}

	return "", fmt.Errorf("팀 명칭 해석 실패 %q: %w", cleaned, ErrUnknownTeam)
}
