package models

import "time"

// 动态（Feed Item）相关模型
// 服务端（远端网关）是唯一数据源，这里只是网关返回的 JSON 映射，不落库。

// FeedItemState 动态生命周期状态。
// 仅当 Private=true 时有意义；公开动态没有生命周期约束。
type FeedItemState string

const (
	StatePending FeedItemState = "Pending"
	StateViewed  FeedItemState = "Viewed"
	StateOpened  FeedItemState = "Opened"
	StateSkipped FeedItemState = "Skipped"
)

// FeedItem 动态条目
type FeedItem struct {
	ID               uint64        `json:"id"`
	Content          string        `json:"content"`
	AuthorID         uint64        `json:"author_id"`
	AuthorName       string        `json:"author_name,omitempty"` // 展示用，可能过期
	CreatedAt        time.Time     `json:"created_at"`
	LikesCount       int           `json:"likes_count"`
	CommentsCount    int           `json:"comments_count"`
	ImageURL         string        `json:"image_url,omitempty"`
	State            FeedItemState `json:"state,omitempty"`
	Private          bool          `json:"private"`
	Targets          []string      `json:"targets,omitempty"`
	CommunityGroupID uint64        `json:"community_group_id,omitempty"`

	// UserReactionID 当前用户对该动态的点赞 reaction id（服务端在 IsLiked=true 时可能内嵌）。
	// 取消点赞时当本地没有记录 id 的兜底来源。
	IsLiked        bool   `json:"isLiked,omitempty"`
	UserReactionID uint64 `json:"user_reaction_id,omitempty"`
}

// Pagination 网关分页游标
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// HasNext 是否还有下一页
func (p Pagination) HasNext() bool {
	return p.Page < p.Pages
}

// FeedPage 一页动态 + 分页信息（网关标准响应）
type FeedPage struct {
	Items      []FeedItem `json:"items"`
	Pagination Pagination `json:"pagination"`
}
