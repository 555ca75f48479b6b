package filestorage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/andrewyi/fetcher/src/entity"
	"github.com/andrewyi/fetcher/src/enum"
)

type SimpleFileStorage struct {
	location string
}

func NewSimpleFileStorage(location string) FileStorage {
	return &SimpleFileStorage{
		location: location,
	}
}

// Store 将资源内容按块写入location下的name文件，已存在则覆盖
// location不存在时会被创建（校验只保证其上级目录可写）
func (s *SimpleFileStorage) Store(name string, res *entity.Resource) (written int64, err error) {
	if err = os.MkdirAll(s.location, os.ModePerm); err != nil {
		return 0, err
	}

	f, err := os.Create(filepath.Join(s.location, name))
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	buf := make([]byte, enum.ChunkSize)
	for {
		n, rerr := res.Body.Read(buf)
		if n > 0 {
			if _, err = f.Write(buf[:n]); err != nil {
				return written, err
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
