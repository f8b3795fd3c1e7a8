package model

import "sort"

// Team KBO 정식 팀 식별자（10개 구단 고정, 런타임에 생성/삭제 없음）
type Team string

const (
	TeamKIA     Team = "KIA"
	TeamLG      Team = "LG"
	TeamNC      Team = "NC"
	TeamKT      Team = "KT"
	TeamSSG     Team = "SSG"
	TeamHanwha  Team = "한화"
	TeamLotte   Team = "롯데"
	TeamSamsung Team = "삼성"
	TeamDoosan  Team = "두산"
	TeamKiwoom  Team = "키움"
)

// Draw 무승부 센티널（승자 없음）. 팀이 아니므로 AllTeams에는 포함하지 않음
const Draw Team = "무승부"

// AllTeams 전체 구단 목록（고정 순서）
func AllTeams() []Team {
	return []Team{
		TeamKIA, TeamLG, TeamNC, TeamKT, TeamSSG,
		TeamHanwha, TeamLotte, TeamSamsung, TeamDoosan, TeamKiwoom,
	}
}

// IsCanonical 정식 팀 식별자인지 확인（Draw 제외）
func (t Team) IsCanonical() bool {
	for _, team := range AllTeams() {
		if t == team {
			return true
		}
	}
	return false
}

// AliasTable 원문 토큰 → 정식 팀 매핑 테이블. 생성 후 불변으로 취급하고
// Resolver 생성 시점에 주입한다（파일마다 매핑을 재정의하지 않음）
type AliasTable map[string]Team

// DefaultAliasTable 표준 별칭 테이블（공식 전체 명칭 / 마스코트명 / 약칭）
func DefaultAliasTable() AliasTable {
	return AliasTable{
		// 약칭（정식 식별자 그대로）
		"KIA": TeamKIA, "LG": TeamLG, "NC": TeamNC, "KT": TeamKT, "SSG": TeamSSG,
		"한화": TeamHanwha, "롯데": TeamLotte, "삼성": TeamSamsung, "두산": TeamDoosan, "키움": TeamKiwoom,
		// 공식 전체 명칭
		"KIA타이거즈": TeamKIA,
		"LG트윈스":   TeamLG,
		"NC다이노스":  TeamNC,
		"KT위즈":    TeamKT,
		"SSG랜더스":  TeamSSG,
		"한화이글스":   TeamHanwha,
		"롯데자이언츠":  TeamLotte,
		"삼성라이온즈":  TeamSamsung,
		"두산베어스":   TeamDoosan,
		"키움히어로즈":  TeamKiwoom,
		// 마스코트명 단독 표기（포털 문자 중계 등에서 등장）
		"타이거즈": TeamKIA,
		"트윈스":  TeamLG,
		"다이노스": TeamNC,
		"위즈":   TeamKT,
		"랜더스":  TeamSSG,
		"이글스":  TeamHanwha,
		"자이언츠": TeamLotte,
		"라이온즈": TeamSamsung,
		"베어스":  TeamDoosan,
		"히어로즈": TeamKiwoom,
	}
}

// AliasesByLength 별칭을 길이 내림차순으로 정렬해 반환.
// 긴 별칭을 먼저 대조해야 짧은 별칭의 부분일치 오인을 막을 수 있다
func (t AliasTable) AliasesByLength() []string {
	aliases := make([]string, 0, len(t))
	for alias := range t {
		aliases = append(aliases, alias)
	}
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j] // 같은 길이는 사전순으로 고정（결정적 순서）
	})
	return aliases
}
