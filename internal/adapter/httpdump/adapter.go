package httpdump

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"KBOResultSync/internal/adapter"
	"KBOResultSync/internal/config"
	"KBOResultSync/internal/interfaces"
	"KBOResultSync/internal/model"
	"KBOResultSync/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Adapter 수집기가 호스팅하는 덤프 문서를 HTTP로 받아오는 소스.
// 문서 형식은 filedump와 동일（사이트 마크업 파싱이나 재시도는 하지 않음）
type Adapter struct {
	cfg        *config.SourceConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewHTTPDumpAdapter(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (a *Adapter) GetName() string {
	return "httpdump"
}

// FetchGames BaseURL 아래의 raw_YYYYMMDD.json 문서를 받아 해석
func (a *Adapter) FetchGames(ctx context.Context, date time.Time) ([]model.RawGame, error) {
	url := fmt.Sprintf("%s/%s", a.cfg.BaseURL, adapter.DumpFileName(date.Format(model.DateFormatFile)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("덤프 문서 요청 실패 %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("덤프 문서 응답 코드 %d (%s)", resp.StatusCode, url)
	}

	games, err := adapter.DecodeRawGames(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("덤프 문서 %s: %w", url, err)
	}
	a.logger.WithFields(logrus.Fields{
		"url":   url,
		"games": len(games),
	}).Info("덤프 문서 수신 완료")
	return games, nil
}
