package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/raylin-wellness/feed-sdk/models"
)

// ListRelationships 拉取某用户名下的全部关系边
func (c *Client) ListRelationships(ctx context.Context, ownedByID uint64) ([]models.UserRelationship, error) {
	path := fmt.Sprintf("/user-relationships?filter=owned_by&ownedById=%d", ownedByID)
	var out []models.UserRelationship
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RelationshipReq 关注/取关的关系描述
type RelationshipReq struct {
	OwnedByID        uint64 `json:"ownedById"`
	UserID           uint64 `json:"userId"`
	RelationshipType string `json:"relationshipType"`
	TargetType       string `json:"targetType"`
}

// CreateRelationship 建立关注边
func (c *Client) CreateRelationship(ctx context.Context, req RelationshipReq) (*models.UserRelationship, error) {
	var out models.UserRelationship
	if err := c.do(ctx, http.MethodPost, "/user-relationships", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRelationship 删除关注边（按四元组定位，网关约定走 query）
func (c *Client) DeleteRelationship(ctx context.Context, req RelationshipReq) error {
	v := url.Values{}
	v.Set("ownedById", strconv.FormatUint(req.OwnedByID, 10))
	v.Set("userId", strconv.FormatUint(req.UserID, 10))
	v.Set("relationshipType", req.RelationshipType)
	if req.TargetType != "" {
		v.Set("targetType", req.TargetType)
	}
	return c.do(ctx, http.MethodDelete, "/user-relationships?"+v.Encode(), nil, nil)
}

// CreateReactionReq 点赞请求。CommentID / FeedItemID 二选一。
type CreateReactionReq struct {
	UserID       uint64 `json:"userId"`
	ReactionType string `json:"reactionType"`
	CommentID    uint64 `json:"commentId,omitempty"`
	FeedItemID   uint64 `json:"feedItemId,omitempty"`
}

// CreateReaction 点赞，返回带 id 的 reaction（取消点赞要用这个 id）
func (c *Client) CreateReaction(ctx context.Context, req CreateReactionReq) (*models.UserReaction, error) {
	var out models.UserReaction
	if err := c.do(ctx, http.MethodPost, "/user-reactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReaction 取消点赞
func (c *Client) DeleteReaction(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/user-reactions/%d", id), nil, nil)
}

// ReportCommentReq 举报评论
type ReportCommentReq struct {
	CommentID         uint64 `json:"commentId"`
	Reason            string `json:"reason"`
	UserID            uint64 `json:"userId"`
	AdditionalDetails string `json:"additionalDetails,omitempty"`
}

func (c *Client) ReportComment(ctx context.Context, req ReportCommentReq) error {
	return c.do(ctx, http.MethodPost, "/reports/comment", req, nil)
}

// ReportFeedItemReq 举报动态
type ReportFeedItemReq struct {
	FeedItemID        uint64 `json:"feedItemId"`
	Reason            string `json:"reason"`
	UserID            uint64 `json:"userId"`
	AdditionalDetails string `json:"additionalDetails,omitempty"`
}

func (c *Client) ReportFeedItem(ctx context.Context, req ReportFeedItemReq) error {
	return c.do(ctx, http.MethodPost, "/reports/feed-item", req, nil)
}
