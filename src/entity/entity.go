package entity

import "io"

// 下载得到的资源，Body由调用方负责关闭
type Resource struct {
	URL        string
	StatusCode int
	Body       io.ReadCloser
}
