package filedump

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"KBOResultSync/internal/adapter"
	"KBOResultSync/internal/config"
	"KBOResultSync/internal/interfaces"
	"KBOResultSync/internal/model"

	"github.com/sirupsen/logrus"
)

// Adapter 외부 크롤러가 떨궈 둔 원시 덤프 파일（raw_YYYYMMDD.json）을 읽는 소스.
// 크롤러 프로세스와 코어를 파일 교환으로 분리하는 가장 단순한 연결 방식
type Adapter struct {
	cfg    *config.SourceConfig
	logger *logrus.Logger
}

func NewFiledumpAdapter(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{cfg: cfg, logger: logger}
}

func (a *Adapter) GetName() string {
	return "filedump"
}

// FetchGames 해당 날짜의 덤프 파일 로드.
// 파일 없음 = 수집 실패（크롤러가 아무것도 만들지 못함）로 오류.
// 빈 배열 = 그날 경기 없음（휴식일）으로 정상
func (a *Adapter) FetchGames(ctx context.Context, date time.Time) ([]model.RawGame, error) {
	_ = ctx
	path := filepath.Join(a.cfg.DumpDir, adapter.DumpFileName(date.Format(model.DateFormatFile)))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("덤프 파일 열기 실패 %s: %w", path, err)
	}
	defer f.Close()

	games, err := adapter.DecodeRawGames(f)
	if err != nil {
		return nil, fmt.Errorf("덤프 파일 %s: %w", path, err)
	}
	a.logger.WithFields(logrus.Fields{
		"path":  path,
		"games": len(games),
	}).Info("덤프 파일 로드 완료")
	return games, nil
}
