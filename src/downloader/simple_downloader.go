// 仅仅实现了简单的http GET方式下载，不做重试
package downloader

import (
	"context"
	"net/http"
	"time"

	"github.com/andrewyi/fetcher/src/entity"
)

const DefaultTimeout = 30 * time.Second

type SimpleDownloader struct {
	client *http.Client
}

func NewSimpleDownloader(timeout time.Duration) Downloader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SimpleDownloader{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *SimpleDownloader) Download(ctx context.Context, url string) (*entity.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &entity.Resource{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}
