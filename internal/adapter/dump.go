package adapter

import (
	"encoding/json"
	"fmt"
	"io"

	"KBOResultSync/internal/model"
)

// 소스마다 키 이름이 제각각인 덤프 문서（away_score/asc/awayScore 등）를
// 이 경계에서 RawGame 계약으로 흡수한다. 코어는 소스별 키 이름을 절대 모른다.

var (
	awayTeamKeys  = []string{"away_team", "awayTeam", "away", "at"}
	homeTeamKeys  = []string{"home_team", "homeTeam", "home", "ht"}
	awayScoreKeys = []string{"away_score", "awayScore", "asc", "ascore"}
	homeScoreKeys = []string{"home_score", "homeScore", "hsc", "hscore"}
	statusKeys    = []string{"status", "state", "game_status"}
	sourceKeys    = []string{"source", "src"}
)

// DecodeRawGames 덤프 문서（JSON 배열）를 RawGame 목록으로 해석.
// 빈 배열은 "그날 경기 없음"으로 유효하다
func DecodeRawGames(r io.Reader) ([]model.RawGame, error) {
	var entries []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("덤프 문서 파싱 실패: %w", err)
	}

	games := make([]model.RawGame, 0, len(entries))
	for _, entry := range entries {
		games = append(games, model.RawGame{
			AwayTeam:  pickString(entry, awayTeamKeys),
			HomeTeam:  pickString(entry, homeTeamKeys),
			AwayScore: pickString(entry, awayScoreKeys),
			HomeScore: pickString(entry, homeScoreKeys),
			Status:    pickString(entry, statusKeys),
			Source:    pickString(entry, sourceKeys),
		})
	}
	return games, nil
}

// pickString 후보 키 중 먼저 존재하는 값을 문자열로 꺼낸다（숫자 값 허용）
func pickString(entry map[string]interface{}, keys []string) string {
	for _, key := range keys {
		v, ok := entry[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			return val
		case float64:
			// JSON 숫자는 float64로 들어온다. 점수는 정수 표기로 환원
			return fmt.Sprintf("%.0f", val)
		default:
			return fmt.Sprintf("%v", val)
		}
	}
	return ""
}

// DumpFileName 날짜별 덤프 파일 명명 규칙（filedump/httpdump 공용）
func DumpFileName(dateStr string) string {
	return "raw_" + dateStr + ".json"
}
