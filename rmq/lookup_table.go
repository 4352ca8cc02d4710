package rmq

// LookupTable 预先算出序列中所有区间的答案。
// 预处理时间与空间均为 O(n^2)，查询 O(1)，
// 只适合很短的序列，同时充当分块结构内部的块内答案表。
type LookupTable struct {
	table []int
	n     int
}

// NewLookupTable 为长度 n 的序列构建全区间答案表。
func NewLookupTable(cmp Comparator, n int) (*LookupTable, error) {
	if err := validateSequence(cmp, n); err != nil {
		return nil, err
	}
	// 行 lo 依次存放 [lo, lo+1), [lo, lo+2), ..., [lo, n) 的答案，
	// 三角形按行摊平成一维。
	table := make([]int, n*(n+1)/2)
	pos := 0
	for lo := 0; lo < n; lo++ {
		m := lo
		table[pos] = m
		pos++
		for hi := lo + 2; hi <= n; hi++ {
			if cmp(hi-1, m) < 0 {
				m = hi - 1
			}
			table[pos] = m
			pos++
		}
	}
	return &LookupTable{table: table, n: n}, nil
}

// Query 返回 [lo, hi) 内最小值的位置，相等时取最左。
func (t *LookupTable) Query(lo, hi int) (int, error) {
	if err := validateRange(lo, hi, t.n); err != nil {
		return 0, err
	}
	return t.find(lo, hi), nil
}

// Len 返回序列长度。
func (t *LookupTable) Len() int {
	return t.n
}

func (t *LookupTable) find(lo, hi int) int {
	// 行 lo 的起点：前 lo 行共 lo*n - lo*(lo-1)/2 个条目。
	return t.table[lo*t.n-lo*(lo-1)/2+hi-lo-1]
}
