package interfaces

import (
	"context"
	"time"

	"KBOResultSync/internal/model"
)

// SourceAdapter 외부 수집기（크롤러）가 구현해야 하는 인터페이스.
// 원격 사이트 접근/렌더링/재시도는 전부 어댑터 구현의 책임이며,
// 코어에는 RawGame 튜플 계약으로만 데이터가 들어온다.
// 빈 목록은 "그날 경기 없음"（휴식일）으로 유효한 상태이고,
// 수집 실패는 error로 구분해 돌려줘야 한다
type SourceAdapter interface {
	GetName() string                                                         // 소스 명칭
	FetchGames(ctx context.Context, date time.Time) ([]model.RawGame, error) // 해당 날짜의 원시 경기 튜플 수집
}
