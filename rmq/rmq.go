// Package rmq 提供静态序列上的区间最小值查询（Range Minimum Query）引擎。
// 序列本身从不被拷贝：所有实现只通过位置比较器访问虚拟序列。
// 预处理在构造函数中一次完成，构造成功后的结构不可变，
// 可以被多个 goroutine 并发只读查询；调用方必须保证底层数据
// 在结构的整个生命周期内不被修改。
// 所有实现共享同一查询约定：半开区间 [lo, hi)，返回最小值的位置，
// 多个位置取值相同时返回最靠左的一个。
package rmq

import (
	"cmp"
	"fmt"
	"math/bits"

	"github.com/shopspring/decimal"
)

// Comparator 报告虚拟序列中位置 i 与位置 j 上取值的相对顺序：
// 负数表示 i 处的值更小，0 表示相等，正数表示更大。
// 比较结果在结构的生命周期内必须保持稳定且无副作用。
type Comparator func(i, j int) int

// Structure 是预处理完成后的 RMQ 查询结构。
type Structure interface {
	// Query 返回半开区间 [lo, hi) 内最小值的位置，0 <= lo < hi <= n。
	Query(lo, hi int) (int, error)
	// Len 返回底层序列的长度。
	Len() int
}

// SliceComparator 为任意有序元素类型的切片构造位置比较器。
// 切片不会被拷贝，浮点序列中的 NaN 按 cmp.Compare 的约定参与排序。
func SliceComparator[T cmp.Ordered](values []T) Comparator {
	return func(i, j int) int {
		return cmp.Compare(values[i], values[j])
	}
}

// DecimalComparator 为 decimal 表示的价格或金额序列构造位置比较器。
func DecimalComparator(values []decimal.Decimal) Comparator {
	return func(i, j int) int {
		return values[i].Cmp(values[j])
	}
}

func validateSequence(c Comparator, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidLength, n)
	}
	if c == nil {
		return ErrNilComparator
	}
	return nil
}

func validateRange(lo, hi, n int) error {
	if lo < 0 || lo >= hi || hi > n {
		return fmt.Errorf("%w: [%d, %d) with n=%d", ErrInvalidRange, lo, hi, n)
	}
	return nil
}

// floorLog2 返回 floor(log2(x))，要求 x >= 1。
func floorLog2(x int) int {
	return bits.Len(uint(x)) - 1
}

// ceilLog2 返回 ceil(log2(x))，要求 x >= 1。
func ceilLog2(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len(uint(x - 1))
}
