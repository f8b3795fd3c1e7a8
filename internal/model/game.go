package model

import (
	"fmt"
	"sort"
	"time"
)

// GameStatus 경기 진행 상태（원문 상태 문자열을 정규화한 값）
type GameStatus string

const (
	StatusFinal      GameStatus = "종료"
	StatusCanceled   GameStatus = "취소"
	StatusPostponed  GameStatus = "연기"
	StatusInProgress GameStatus = "진행"
)

// RawGame 외부 수집기（크롤러）가 넘겨주는 경기 1건의 원시 튜플.
// 수집 방식（정적 fetch / headless 브라우저 / 검색 결과）은 코어가 관여하지 않고,
// 소스별 키 이름 차이는 어댑터 경계에서 이 형태로 흡수한다
type RawGame struct {
	AwayTeam  string `json:"away_team"`
	HomeTeam  string `json:"home_team"`
	AwayScore string `json:"away_score"`
	HomeScore string `json:"home_score"`
	Status    string `json:"status,omitempty"`
	Source    string `json:"source,omitempty"`
}

// GameRecord 정규화가 끝난 경기 1건. Builder가 생성한 뒤에는 불변
type GameRecord struct {
	Date      time.Time `json:"-"`
	DateStr   string    `json:"date"` // YYYY-MM-DD（저장 포맷）
	AwayTeam  Team      `json:"away_team"`
	HomeTeam  Team      `json:"home_team"`
	AwayScore int       `json:"away_score"`
	HomeScore int       `json:"home_score"`
	Winner    Team      `json:"winner"` // away/home 중 승자, 동점이면 Draw
	Source    string    `json:"source,omitempty"`
}

// FixtureKey 경기 식별 키: 날짜 + 무순서 팀 쌍.
// 같은 날 같은 두 팀은 1경기로 본다（더블헤더는 표현 불가 — 알려진 제약）
type FixtureKey struct {
	Date  string // YYYY-MM-DD
	TeamA Team   // 사전순 앞
	TeamB Team   // 사전순 뒤
}

// Fixture 레코드의 경기 식별 키 계산（home/away 순서 무관）
func (g GameRecord) Fixture() FixtureKey {
	a, b := g.AwayTeam, g.HomeTeam
	if string(b) < string(a) {
		a, b = b, a
	}
	return FixtureKey{Date: g.DateStr, TeamA: a, TeamB: b}
}

func (k FixtureKey) String() string {
	return fmt.Sprintf("%s/%s-%s", k.Date, k.TeamA, k.TeamB)
}

// ScoreOf 해당 팀의 득점을 돌려준다（경기 무관 팀이면 ok=false）
func (g GameRecord) ScoreOf(team Team) (int, bool) {
	switch team {
	case g.AwayTeam:
		return g.AwayScore, true
	case g.HomeTeam:
		return g.HomeScore, true
	}
	return 0, false
}

// IsDraw 무승부 여부
func (g GameRecord) IsDraw() bool {
	return g.Winner == Draw
}

// DailyResultSet 하루치 정규화 결과. 경기 키당 레코드 1건이 불변식
type DailyResultSet struct {
	Date    time.Time
	Records map[FixtureKey]GameRecord
}

// NewDailyResultSet 빈 하루치 결과 집합 생성
func NewDailyResultSet(date time.Time) DailyResultSet {
	return DailyResultSet{
		Date:    date,
		Records: make(map[FixtureKey]GameRecord),
	}
}

// SortedRecords 저장/응답용 정렬 목록（경기 키 문자열 오름차순, 결정적）
func (s DailyResultSet) SortedRecords() []GameRecord {
	keys := make([]FixtureKey, 0, len(s.Records))
	for k := range s.Records {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	records := make([]GameRecord, 0, len(keys))
	for _, k := range keys {
		records = append(records, s.Records[k])
	}
	return records
}

// TeamStats 팀별 누적 성적（저장하지 않고 조회 시점에 집계）
type TeamStats struct {
	Team       Team    `json:"team"`
	TotalGames int     `json:"total_games"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"` // wins/total_games, 경기 없으면 0.0
}

// WinnerEntry 승리팀 프로젝션의 1항목
type WinnerEntry struct {
	Date   string `json:"date"`
	Winner Team   `json:"winner"`
	Game   string `json:"game"` // "원정팀 vs 홈팀" 표기
}

// DateFormat 저장 파일명/키에 쓰는 날짜 포맷
const (
	DateFormat     = "2006-01-02"
	DateFormatFile = "20060102"
)
