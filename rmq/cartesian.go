package rmq

import (
	"log/slog"
	"time"
)

// CartesianTable 基于笛卡尔树形状分块的静态 RMQ 结构。
// 序列切成长度约 log2(n)/3 的块，形状相同的块共享同一张块内答案表，
// 块间由倍增表覆盖，总预处理 O(n)，查询 O(1)。
type CartesianTable struct {
	*blockTable
}

// NewCartesianTable 对长度 n 的序列做线性预处理。
// 比较器只在构建期间被调用，构建完成后结构可被并发只读查询。
func NewCartesianTable(cmp Comparator, n int) (*CartesianTable, error) {
	if err := validateSequence(cmp, n); err != nil {
		return nil, err
	}
	start := time.Now()
	bt, err := newBlockTable(cmp, n, cartesianScheme{blockSize: cartesianBlockSize(n)})
	if err != nil {
		return nil, err
	}
	slog.Debug("cartesian RMQ preprocessing completed",
		"n", n,
		"block_size", bt.blockSize,
		"shape_keys", bt.keyCount,
		"duration", time.Since(start))
	return &CartesianTable{blockTable: bt}, nil
}

func cartesianBlockSize(n int) int {
	return max(4, (ceilLog2(n)+2)/3)
}

// cartesianScheme 以块的笛卡尔树形状作为同构键。
// 键编码单调栈扫描的出入栈序列：弹栈记 0 位，入栈记 1 位，低位在前，
// 位宽不超过 2*blockSize，不同形状数受 Catalan(blockSize) 约束。
type cartesianScheme struct {
	blockSize int
}

func (s cartesianScheme) size() int { return s.blockSize }

func (s cartesianScheme) blockKey(cmp Comparator, base int) uint64 {
	stack := make([]int, 0, s.blockSize)
	var key uint64
	bit := 0
	for i := 0; i < s.blockSize; i++ {
		for len(stack) > 0 && cmp(base+i, base+stack[len(stack)-1]) < 0 {
			stack = stack[:len(stack)-1]
			bit++
		}
		stack = append(stack, i)
		key |= 1 << bit
		bit++
	}
	return key
}

// demoBlock 按出入栈序列重放出一个同形状的整数序列。
// 普通入栈取栈顶加 blockSize，弹栈后入栈取最后弹出值减 1；
// 全程的减 1 次数少于 blockSize，栈内取值始终严格递增，
// 因此重放序列的每次比较都与原块一致。
func (s cartesianScheme) demoBlock(key uint64) []int {
	demo := make([]int, s.blockSize)
	stack := make([]int, 0, s.blockSize)
	bit := 0
	for i := 0; i < s.blockSize; i++ {
		x := 0
		if len(stack) > 0 {
			x = stack[len(stack)-1] + s.blockSize
		}
		for key&(1<<bit) == 0 {
			x = stack[len(stack)-1] - 1
			stack = stack[:len(stack)-1]
			bit++
		}
		stack = append(stack, x)
		bit++
		demo[i] = x
	}
	return demo
}
