package service

import "github.com/raylin-wellness/feed-sdk/models"

// CommentNode 评论树节点
type CommentNode struct {
	models.Comment
	Replies []*CommentNode `json:"replies,omitempty"`
}

// BuildCommentTree 把一条动态的平铺评论组装成森林：
// 顶级评论（无 parent）为根，回复递归挂在父节点下。
//
// 输入顺序任意；产品上只用到一级回复，但这里支持任意深度。
// 父节点不在列表里的孤儿回复直接丢弃，不报错（展示孤儿不是目标）。
// 每次拉取都整体重建，不做增量维护。
func BuildCommentTree(comments []models.Comment) []*CommentNode {
	nodes := make(map[uint64]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{Comment: comments[i]}
	}

	var roots []*CommentNode
	for i := range comments {
		node := nodes[comments[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok || parent == node {
			// 孤儿（或自引用脏数据）：不进树
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return roots
}

// CountCommentTree 树里实际挂上的评论总数（孤儿不计）
func CountCommentTree(roots []*CommentNode) int {
	n := 0
	var walk func(nodes []*CommentNode)
	walk = func(nodes []*CommentNode) {
		for _, node := range nodes {
			n++
			walk(node.Replies)
		}
	}
	walk(roots)
	return n
}
