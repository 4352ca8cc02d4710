package lca

import "errors"

var (
	// ErrEmptyTree 表示邻接表为空。
	ErrEmptyTree = errors.New("tree must have at least one vertex")
	// ErrRootOutOfRange 表示根顶点编号越界。
	ErrRootOutOfRange = errors.New("root out of range")
	// ErrVertexOutOfRange 表示顶点编号越界。
	ErrVertexOutOfRange = errors.New("vertex out of range")
	// ErrVertexUnreachable 表示顶点不在根所在的连通分量内。
	ErrVertexUnreachable = errors.New("vertex unreachable from root")
	// ErrNotATree 表示邻接表中存在环或被重复到达的顶点。
	ErrNotATree = errors.New("adjacency list is not a tree")
)
