// Package lca 提供静态有根树上的最近公共祖先（Lowest Common Ancestor）查询。
// 树在构造时一次给定，构造完成后的结构不可变，可被多个 goroutine
// 并发只读查询。
package lca

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/wyfcoding/rangemin/rmq"
)

// TourLCA 把 LCA 查询归约为欧拉环游深度序列上的区间最小值查询。
// 预处理 O(n)，单次查询 O(1)：两个顶点首次出现位置之间深度最小的
// 环游位置，对应的顶点就是最近公共祖先。
type TourLCA struct {
	rmq        *rmq.CartesianTable
	tourVertex []int
	tourDepth  []int
	firstPos   []int // -1 表示从根不可达
	depth      []int
	n          int
}

// NewTourLCA 以 root 为根在邻接表 adj 上构建查询结构。
// adj 既可以是有向的孩子表，也可以是无向邻接表：遍历会跳过来路的
// 父节点。不与根连通的顶点视为不可达，查询时返回错误。
func NewTourLCA(root int, adj [][]int) (*TourLCA, error) {
	n := len(adj)
	if n == 0 {
		return nil, ErrEmptyTree
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root=%d with n=%d", ErrRootOutOfRange, root, n)
	}

	start := time.Now()
	t := &TourLCA{
		tourVertex: make([]int, 0, 2*n-1),
		tourDepth:  make([]int, 0, 2*n-1),
		firstPos:   make([]int, n),
		depth:      make([]int, n),
		n:          n,
	}
	for i := range t.firstPos {
		t.firstPos[i] = -1
	}
	if err := t.buildTour(root, adj); err != nil {
		return nil, err
	}

	table, err := rmq.NewCartesianTable(rmq.SliceComparator(t.tourDepth), len(t.tourDepth))
	if err != nil {
		return nil, err
	}
	t.rmq = table

	slog.Info("tour LCA build completed",
		"vertices", n,
		"tour_length", len(t.tourVertex),
		"duration", time.Since(start))
	return t, nil
}

type tourFrame struct {
	v, parent, next int
}

// buildTour 用显式栈做深度优先遍历，进入顶点与每次从孩子返回时
// 各记录一次环游位置，环游长度为 2k-1（k 为可达顶点数）。
func (t *TourLCA) buildTour(root int, adj [][]int) error {
	t.firstPos[root] = 0
	t.depth[root] = 0
	t.appendVisit(root)

	stack := make([]tourFrame, 0, 64)
	stack = append(stack, tourFrame{v: root, parent: -1})
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(adj[top.v]) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				t.appendVisit(stack[len(stack)-1].v)
			}
			continue
		}

		u := adj[top.v][top.next]
		top.next++
		if u < 0 || u >= t.n {
			return fmt.Errorf("%w: vertex %d in adjacency of %d with n=%d", ErrVertexOutOfRange, u, top.v, t.n)
		}
		if u == top.parent {
			continue
		}
		if t.firstPos[u] != -1 {
			return fmt.Errorf("%w: vertex %d reached twice", ErrNotATree, u)
		}
		t.depth[u] = t.depth[top.v] + 1
		t.firstPos[u] = len(t.tourVertex)
		t.appendVisit(u)
		stack = append(stack, tourFrame{v: u, parent: top.v})
	}
	return nil
}

func (t *TourLCA) appendVisit(v int) {
	t.tourVertex = append(t.tourVertex, v)
	t.tourDepth = append(t.tourDepth, t.depth[v])
}

// GetLCA 返回 u 与 v 的最近公共祖先。
func (t *TourLCA) GetLCA(u, v int) (int, error) {
	if err := t.validateVertex(u); err != nil {
		return 0, err
	}
	if err := t.validateVertex(v); err != nil {
		return 0, err
	}
	if u == v {
		return u, nil
	}

	lo, hi := t.firstPos[u], t.firstPos[v]
	if lo > hi {
		lo, hi = hi, lo
	}
	pos, err := t.rmq.Query(lo, hi+1)
	if err != nil {
		return 0, err
	}
	return t.tourVertex[pos], nil
}

// GetDistance 返回 u 与 v 之间路径的边数。
func (t *TourLCA) GetDistance(u, v int) (int, error) {
	w, err := t.GetLCA(u, v)
	if err != nil {
		return 0, err
	}
	return t.depth[u] + t.depth[v] - 2*t.depth[w], nil
}

// Depth 返回顶点到根的边数。
func (t *TourLCA) Depth(v int) (int, error) {
	if err := t.validateVertex(v); err != nil {
		return 0, err
	}
	return t.depth[v], nil
}

func (t *TourLCA) validateVertex(v int) error {
	if v < 0 || v >= t.n {
		return fmt.Errorf("%w: vertex=%d with n=%d", ErrVertexOutOfRange, v, t.n)
	}
	if t.firstPos[v] == -1 {
		return fmt.Errorf("%w: vertex=%d", ErrVertexUnreachable, v)
	}
	return nil
}
