package rmq

// SparseTable 基于倍增的静态区间最小值结构。
// 预处理 O(n log n)，查询 O(1)，任意区间由两个长度为 2 的幂的
// 子区间覆盖后合并得出。
type SparseTable struct {
	cmp    Comparator
	table  []int
	n      int
	levels int
}

// NewSparseTable 为长度 n 的序列构建倍增表。
func NewSparseTable(cmp Comparator, n int) (*SparseTable, error) {
	if err := validateSequence(cmp, n); err != nil {
		return nil, err
	}
	levels := floorLog2(n) + 1
	// 第 k 层第 i 个条目存放 [i, i+2^k) 的答案，按层摊平。
	table := make([]int, levels*n)
	for i := 0; i < n; i++ {
		table[i] = i
	}
	for k := 1; k < levels; k++ {
		half := 1 << (k - 1)
		for i := 0; i+(1<<k) <= n; i++ {
			left := table[(k-1)*n+i]
			right := table[(k-1)*n+i+half]
			// 严格小于才取右半边，保证相等时答案最左。
			if cmp(right, left) < 0 {
				table[k*n+i] = right
			} else {
				table[k*n+i] = left
			}
		}
	}
	return &SparseTable{cmp: cmp, table: table, n: n, levels: levels}, nil
}

// Query 返回 [lo, hi) 内最小值的位置，相等时取最左。
func (t *SparseTable) Query(lo, hi int) (int, error) {
	if err := validateRange(lo, hi, t.n); err != nil {
		return 0, err
	}
	return t.find(lo, hi), nil
}

// Len 返回序列长度。
func (t *SparseTable) Len() int {
	return t.n
}

func (t *SparseTable) find(lo, hi int) int {
	k := floorLog2(hi - lo)
	left := t.table[k*t.n+lo]
	right := t.table[k*t.n+hi-(1<<k)]
	if t.cmp(right, left) < 0 {
		return right
	}
	return left
}
