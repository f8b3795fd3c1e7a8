package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRawGamesKeyVariants(t *testing.T) {
	// 소스 저장 형식이 제각각이던 키 변형들이 전부 같은 계약으로 수렴해야 한다
	doc := `[
	  {"away_team": "KIA", "home_team": "LG", "away_score": "5", "home_score": "3", "status": "종료", "source": "naver"},
	  {"awayTeam": "NC", "homeTeam": "SSG", "awayScore": 4, "homeScore": 4},
	  {"at": "두산", "ht": "롯데", "asc": ": 7", "hsc": "2", "state": "종료"}
	]`
	games, err := DecodeRawGames(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, "KIA", games[0].AwayTeam)
	assert.Equal(t, "naver", games[0].Source)

	// JSON 숫자 값은 정수 표기 문자열로 환원
	assert.Equal(t, "4", games[1].AwayScore)
	assert.Equal(t, "4", games[1].HomeScore)

	assert.Equal(t, "두산", games[2].AwayTeam)
	assert.Equal(t, ": 7", games[2].AwayScore)
	assert.Equal(t, "종료", games[2].Status)
}

func TestDecodeRawGamesEmptyDocument(t *testing.T) {
	games, err := DecodeRawGames(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, games, "빈 배열은 경기 없는 날로 유효")
}

func TestDecodeRawGamesMalformed(t *testing.T) {
	_, err := DecodeRawGames(strings.NewReader(`{"not": "an array"`))
	require.Error(t, err)
}
