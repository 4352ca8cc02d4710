package lca

import (
	"fmt"
	"log/slog"
	"time"
)

// TreeLCA 基于倍增（Binary Lifting）的最近公共祖先查询结构。
// 预处理 O(n log n)，单次查询 O(log n)，与 TourLCA 结果一致，
// 适合查询量不大、希望省去环游数组的场景。
type TreeLCA struct {
	up    []int // up[v*logN+i] 为 v 的第 2^i 级祖先，-1 表示不存在
	depth []int // -1 表示从根不可达
	logN  int
	n     int
}

// NewTreeLCA 以 root 为根在邻接表 adj 上构建倍增表。
// 对邻接表形式的要求与 NewTourLCA 相同。
func NewTreeLCA(root int, adj [][]int) (*TreeLCA, error) {
	n := len(adj)
	if n == 0 {
		return nil, ErrEmptyTree
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root=%d with n=%d", ErrRootOutOfRange, root, n)
	}

	logN := 1
	for (1 << logN) < n {
		logN++
	}

	start := time.Now()
	lca := &TreeLCA{
		up:    make([]int, n*logN),
		depth: make([]int, n),
		logN:  logN,
		n:     n,
	}
	for i := range lca.up {
		lca.up[i] = -1
	}
	for i := range lca.depth {
		lca.depth[i] = -1
	}
	if err := lca.iterativeDFS(root, adj); err != nil {
		return nil, err
	}

	// 倍增表：第 2^i 级祖先由两段 2^(i-1) 拼接得到。
	for i := 1; i < logN; i++ {
		for v := range n {
			mid := lca.up[v*logN+i-1]
			if mid != -1 {
				lca.up[v*logN+i] = lca.up[mid*logN+i-1]
			}
		}
	}

	slog.Info("binary lifting LCA build completed",
		"vertices", n,
		"levels", logN,
		"duration", time.Since(start))
	return lca, nil
}

type stackItem struct {
	v, p, d int
}

func (lca *TreeLCA) iterativeDFS(root int, adj [][]int) error {
	lca.depth[root] = 0
	stack := []stackItem{{v: root, p: -1, d: 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v, p, d := curr.v, curr.p, curr.d
		lca.up[v*lca.logN] = p

		for _, u := range adj[v] {
			if u < 0 || u >= lca.n {
				return fmt.Errorf("%w: vertex %d in adjacency of %d with n=%d", ErrVertexOutOfRange, u, v, lca.n)
			}
			if u == p {
				continue
			}
			if lca.depth[u] != -1 {
				return fmt.Errorf("%w: vertex %d reached twice", ErrNotATree, u)
			}
			lca.depth[u] = d + 1
			stack = append(stack, stackItem{v: u, p: v, d: d + 1})
		}
	}
	return nil
}

// GetLCA 返回 u 与 v 的最近公共祖先。
func (lca *TreeLCA) GetLCA(u, v int) (int, error) {
	if err := lca.validateVertex(u); err != nil {
		return 0, err
	}
	if err := lca.validateVertex(v); err != nil {
		return 0, err
	}

	if lca.depth[u] < lca.depth[v] {
		u, v = v, u
	}

	// 1. 将 u 提升到与 v 同一深度。
	diff := lca.depth[u] - lca.depth[v]
	for i := range lca.logN {
		if diff&(1<<i) != 0 {
			u = lca.up[u*lca.logN+i]
		}
	}

	if u == v {
		return u, nil
	}

	// 2. 同时提升 u 和 v，直到它们的父节点相同。
	for i := lca.logN - 1; i >= 0; i-- {
		idxU := u*lca.logN + i
		idxV := v*lca.logN + i
		if lca.up[idxU] != lca.up[idxV] {
			u = lca.up[idxU]
			v = lca.up[idxV]
		}
	}

	return lca.up[u*lca.logN], nil
}

// GetDistance 返回 u 与 v 之间路径的边数。
func (lca *TreeLCA) GetDistance(u, v int) (int, error) {
	w, err := lca.GetLCA(u, v)
	if err != nil {
		return 0, err
	}
	return lca.depth[u] + lca.depth[v] - 2*lca.depth[w], nil
}

// Depth 返回顶点到根的边数。
func (lca *TreeLCA) Depth(v int) (int, error) {
	if err := lca.validateVertex(v); err != nil {
		return 0, err
	}
	return lca.depth[v], nil
}

func (lca *TreeLCA) validateVertex(v int) error {
	if v < 0 || v >= lca.n {
		return fmt.Errorf("%w: vertex=%d with n=%d", ErrVertexOutOfRange, v, lca.n)
	}
	if lca.depth[v] == -1 {
		return fmt.Errorf("%w: vertex=%d", ErrVertexUnreachable, v)
	}
	return nil
}
