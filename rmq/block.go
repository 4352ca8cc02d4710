package rmq

// blockScheme 描述一种块同构键的编码方式。
// 同键的块必须两两序同构：任意一对块内偏移的比较结果一致。
type blockScheme interface {
	// size 返回块长。
	size() int
	// blockKey 计算从 base 开始的一个块的同构键。
	blockKey(cmp Comparator, base int) uint64
	// demoBlock 解码出与该键序同构的一个代表序列。
	demoBlock(key uint64) []int
}

// blockTable 是线性预处理 RMQ 的公共骨架：
// 序列切成定长块，块内答案表按同构键共享，块间用倍增表覆盖，
// 一次查询拆成首块后缀、整块区间、末块前缀三段后合并。
type blockTable struct {
	cmp       Comparator // 末块越界位置按比一切都大处理
	n         int
	blockSize int
	blockNum  int
	prefixMin []uint8
	suffixMin []uint8
	inner     []*LookupTable
	outer     *SparseTable
	keyCount  int
}

func newBlockTable(cmp Comparator, n int, scheme blockScheme) (*blockTable, error) {
	blockSize := scheme.size()
	blockNum := (n + blockSize - 1) / blockSize
	padded := cmp
	if blockNum*blockSize != n {
		padded = paddedComparator(cmp, n)
	}

	// 每块存 blockSize-1 个前缀最小偏移与 blockSize-1 个后缀最小偏移，
	// 单元素前缀 [0,0] 与后缀 [blockSize-1, blockSize) 无需存储。
	prefixMin := make([]uint8, blockNum*(blockSize-1))
	suffixMin := make([]uint8, blockNum*(blockSize-1))
	for b := 0; b < blockNum; b++ {
		base := b * blockSize
		m := 0
		for i := 1; i < blockSize; i++ {
			if padded(base+i, base+m) < 0 {
				m = i
			}
			prefixMin[b*(blockSize-1)+i-1] = uint8(m) //nolint:gosec // 块内偏移小于 blockSize，uint8 足够。
		}
		m = blockSize - 1
		for i := blockSize - 2; i >= 0; i-- {
			// 取等时偏向更左的位置。
			if padded(base+i, base+m) <= 0 {
				m = i
			}
			suffixMin[b*(blockSize-1)+i] = uint8(m) //nolint:gosec // 块内偏移小于 blockSize，uint8 足够。
		}
	}

	// 同键的块共享同一张块内答案表，表建在解码出的代表序列上。
	keyTables := make(map[uint64]*LookupTable)
	inner := make([]*LookupTable, blockNum)
	for b := 0; b < blockNum; b++ {
		key := scheme.blockKey(padded, b*blockSize)
		tab, ok := keyTables[key]
		if !ok {
			demo := scheme.demoBlock(key)
			var err error
			tab, err = NewLookupTable(SliceComparator(demo), len(demo))
			if err != nil {
				return nil, err
			}
			keyTables[key] = tab
		}
		inner[b] = tab
	}

	t := &blockTable{
		cmp:       padded,
		n:         n,
		blockSize: blockSize,
		blockNum:  blockNum,
		prefixMin: prefixMin,
		suffixMin: suffixMin,
		inner:     inner,
		keyCount:  len(keyTables),
	}

	// 块间结构建在各块最小值的代表位置上。
	outer, err := NewSparseTable(func(i, j int) int {
		return padded(i*blockSize+t.blockMin(i), j*blockSize+t.blockMin(j))
	}, blockNum)
	if err != nil {
		return nil, err
	}
	t.outer = outer
	return t, nil
}

// Query 返回 [lo, hi) 内最小值的位置，相等时取最左。
func (t *blockTable) Query(lo, hi int) (int, error) {
	if err := validateRange(lo, hi, t.n); err != nil {
		return 0, err
	}
	return t.find(lo, hi), nil
}

// Len 返回序列长度。
func (t *blockTable) Len() int {
	return t.n
}

func (t *blockTable) find(lo, hi int) int {
	last := hi - 1
	b0, i0 := lo/t.blockSize, lo%t.blockSize
	b1, i1 := last/t.blockSize, last%t.blockSize

	if b0 == b1 {
		return b0*t.blockSize + t.inner[b0].find(i0, i1+1)
	}

	// 首块后缀。
	best := lo
	if i0 < t.blockSize-1 {
		best = b0*t.blockSize + int(t.suffixMin[b0*(t.blockSize-1)+i0])
	}
	// 中间整块，按位置顺序合并保证取等最左。
	if b0+1 < b1 {
		blk := t.outer.find(b0+1, b1)
		cand := blk*t.blockSize + t.blockMin(blk)
		if t.cmp(cand, best) < 0 {
			best = cand
		}
	}
	// 末块前缀。
	cand := b1 * t.blockSize
	if i1 > 0 {
		cand += int(t.prefixMin[b1*(t.blockSize-1)+i1-1])
	}
	if t.cmp(cand, best) < 0 {
		best = cand
	}
	return best
}

// blockMin 返回块 b 内最左最小值的块内偏移。
func (t *blockTable) blockMin(b int) int {
	return int(t.suffixMin[b*(t.blockSize-1)])
}

// paddedComparator 把 n 及之后的越界位置当作比任何真实位置都大，
// 使末块在逻辑上补齐到整块长。
func paddedComparator(cmp Comparator, n int) Comparator {
	return func(i, j int) int {
		if i >= n {
			return 1
		}
		if j >= n {
			return -1
		}
		return cmp(i, j)
	}
}
