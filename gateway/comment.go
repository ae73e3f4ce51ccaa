package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raylin-wellness/feed-sdk/models"
)

// CommentableTypeFeedItem 评论宿主类型，目前只有动态一种
const CommentableTypeFeedItem = "FeedItem"

// ListComments 拉取一条动态的全部评论（平铺，包含回复）
func (c *Client) ListComments(ctx context.Context, feedItemID uint64) ([]models.Comment, error) {
	path := fmt.Sprintf("/comments?commentable_type=%s&commentable_id=%d", CommentableTypeFeedItem, feedItemID)
	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Comments == nil {
		return []models.Comment{}, nil
	}
	return resp.Comments, nil
}

// ListCommentReplies 拉取某条评论的回复
func (c *Client) ListCommentReplies(ctx context.Context, commentID uint64) ([]models.Comment, error) {
	var resp struct {
		Replies []models.Comment `json:"replies"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/comments/%d/replies", commentID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Replies == nil {
		return []models.Comment{}, nil
	}
	return resp.Replies, nil
}

// CreateCommentReq 发表评论请求
type CreateCommentReq struct {
	Content         string  `json:"content"`
	UserID          uint64  `json:"user_id"`
	AuthorName      string  `json:"author_name,omitempty"`
	ParentID        *uint64 `json:"parent_id,omitempty"`
	CommentableID   uint64  `json:"commentable_id"`
	CommentableType string  `json:"commentable_type"`
}

// CreateComment 发表评论；CommentableType 为空时补默认值
func (c *Client) CreateComment(ctx context.Context, req CreateCommentReq) (*models.Comment, error) {
	if req.CommentableType == "" {
		req.CommentableType = CommentableTypeFeedItem
	}
	var out models.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCommentContent 编辑评论（只允许改 content 单字段）
func (c *Client) UpdateCommentContent(ctx context.Context, id uint64, content string) (*models.Comment, error) {
	ops := []PatchOp{Replace("content", content)}
	var out models.Comment
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/comments/%d", id), ops, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment 删除评论
func (c *Client) DeleteComment(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, nil)
}
