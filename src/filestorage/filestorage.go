package filestorage

import (
	"github.com/andrewyi/fetcher/src/entity"
)

type FileStorage interface {
	Store(string, *entity.Resource) (int64, error)
}
