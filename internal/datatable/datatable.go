package datatable

import "simpledb/internal/common"

type DataTable interface {
	Get(key string) common.Value
	Put(key string, value int64)
	Delete(key string)
	Size() int
	Keys() []string
}
