package rmq

import (
	"log/slog"
	"time"
)

// PlusMinusOneTable 面向相邻元素之差恒为 ±1 的序列的静态 RMQ 结构，
// 典型来源是树的欧拉环游深度序列。块形状由 blockSize-1 个升降方向位
// 完全决定，块长约 log2(n)/2，预处理 O(n)，查询 O(1)。
// ±1 性质无法通过比较器检验，由调用方保证；不满足时查询结果未定义。
type PlusMinusOneTable struct {
	*blockTable
}

// NewPlusMinusOneTable 对长度 n 的 ±1 序列做线性预处理。
func NewPlusMinusOneTable(cmp Comparator, n int) (*PlusMinusOneTable, error) {
	if err := validateSequence(cmp, n); err != nil {
		return nil, err
	}
	start := time.Now()
	bt, err := newBlockTable(cmp, n, plusMinusScheme{blockSize: plusMinusBlockSize(n)})
	if err != nil {
		return nil, err
	}
	slog.Debug("plus-minus-one RMQ preprocessing completed",
		"n", n,
		"block_size", bt.blockSize,
		"shape_keys", bt.keyCount,
		"duration", time.Since(start))
	return &PlusMinusOneTable{blockTable: bt}, nil
}

func plusMinusBlockSize(n int) int {
	return max(4, (ceilLog2(n)+1)/2)
}

// plusMinusScheme 以相邻元素的升降方向位作为同构键，下降记 1，低位在前。
type plusMinusScheme struct {
	blockSize int
}

func (s plusMinusScheme) size() int { return s.blockSize }

func (s plusMinusScheme) blockKey(cmp Comparator, base int) uint64 {
	var key uint64
	for i := 0; i+1 < s.blockSize; i++ {
		if cmp(base+i+1, base+i) < 0 {
			key |= 1 << i
		}
	}
	return key
}

// demoBlock 从 0 出发按方向位重放整条折线。
// 对真正的 ±1 块，重放结果是原块的平移，所有比较关系原样保留。
func (s plusMinusScheme) demoBlock(key uint64) []int {
	demo := make([]int, s.blockSize)
	for i := 1; i < s.blockSize; i++ {
		if key&(1<<(i-1)) != 0 {
			demo[i] = demo[i-1] - 1
		} else {
			demo[i] = demo[i-1] + 1
		}
	}
	return demo
}
