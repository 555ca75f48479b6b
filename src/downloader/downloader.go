package downloader

import (
	"context"

	"github.com/andrewyi/fetcher/src/entity"
)

// 返回error表示传输层失败，任何http状态码（包括非200）都以Resource返回
type Downloader interface {
	Download(context.Context, string) (*entity.Resource, error)
}
