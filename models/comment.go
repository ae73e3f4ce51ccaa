package models

import "time"

// Comment 评论。归属于一条动态（CommentableID），ParentID 非空表示回复。
// 字段命名跟随网关返回（混合风格是网关历史包袱，这里原样映射）。
type Comment struct {
	ID              uint64    `json:"id"`
	Content         string    `json:"content"`
	UserID          uint64    `json:"user_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	ParentID        *uint64   `json:"parent_id,omitempty"` // nil 为顶级评论
	CommentableType string    `json:"commentable_type,omitempty"`
	CommentableID   uint64    `json:"commentable_id"`
	LikesCount      int       `json:"likes_count"`
	IsLiked         bool      `json:"isLiked,omitempty"`
	UserReactionID  uint64    `json:"user_reaction_id,omitempty"` // 同 FeedItem：取消点赞的兜底 reaction id
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}
