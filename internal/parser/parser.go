package parser

import "simpledb/internal/common"

type Parser interface {
	Parse(data []byte) (*common.Command, error)
}
