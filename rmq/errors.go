package rmq

import "errors"

var (
	// ErrInvalidLength 表示序列长度不是正数。
	ErrInvalidLength = errors.New("sequence length must be positive")
	// ErrNilComparator 表示未提供比较器。
	ErrNilComparator = errors.New("comparator must not be nil")
	// ErrInvalidRange 表示查询区间越界或为空。
	ErrInvalidRange = errors.New("query range out of bounds")
)
