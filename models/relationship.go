package models

// UserRelationship 有向关注边：OwnedByID（关注者）-> UserID（被关注者）。
// TargetType 区分关注用户还是关注群组。
// 同一 (OwnedByID, UserID, TargetType) 同时最多存在一条 follow 关系。
type UserRelationship struct {
	ID               uint64 `json:"id"`
	OwnedByID        uint64 `json:"ownedById"`
	UserID           uint64 `json:"userId"`
	RelationshipType string `json:"relationshipType"`
	TargetType       string `json:"targetType"`
}

// UserReaction 点赞。CommentID / FeedItemID 互斥，删除 id 即取消点赞。
type UserReaction struct {
	ID           uint64 `json:"id"`
	UserID       uint64 `json:"userId"`
	ReactionType string `json:"reactionType"`
	CommentID    uint64 `json:"commentId,omitempty"`
	FeedItemID   uint64 `json:"feedItemId,omitempty"`
}

// CurrentUser 当前用户身份（由宿主注入 / 会话解析）
type CurrentUser struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
