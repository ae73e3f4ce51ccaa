package service

import (
	"context"
	"errors"
	"strings"

	"github.com/raylin-wellness/feed-sdk/cons"
	"github.com/raylin-wellness/feed-sdk/gateway"
	"github.com/raylin-wellness/feed-sdk/models"
)

// PostService 动态的创建/删除等写操作（点赞在 ReactionService，状态流转在 StateService）
type PostService struct{ *Service }

func NewPostService(s *Service) *PostService { return &PostService{Service: s} }

// CreatePostReq 发布动态请求
type CreatePostReq struct {
	Content          string   `json:"content" binding:"required"`
	AuthorName       string   `json:"author_name"`
	ImageURL         string   `json:"image_url"`
	Private          bool     `json:"private"`
	Targets          []string `json:"targets"`
	CommunityGroupID uint64   `json:"community_group_id"`
}

// CreatePost 发布动态，成功后失效 feed 作用域
func (s *PostService) CreatePost(ctx context.Context, userID uint64, req CreatePostReq) (*models.FeedItem, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}
	item, err := s.Gateway.CreateFeedItem(ctx, gateway.CreateFeedItemReq{
		Content:          req.Content,
		AuthorID:         userID,
		AuthorName:       req.AuthorName,
		ImageURL:         req.ImageURL,
		Private:          req.Private,
		Targets:          req.Targets,
		CommunityGroupID: req.CommunityGroupID,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(FeedScope{})
	return item, nil
}

// GetPost 拉取单条动态
func (s *PostService) GetPost(ctx context.Context, id uint64) (*models.FeedItem, error) {
	return s.Gateway.GetFeedItem(ctx, id)
}

// DeletePost 删除动态（评论由服务端级联），成功后失效 feed 作用域。
// 本地从不私自删除条目，删除只会走这条显式路径。
func (s *PostService) DeletePost(ctx context.Context, userID, id uint64) error {
	if err := s.Gateway.DeleteFeedItem(ctx, id); err != nil {
		return err
	}
	s.invalidate(FeedScope{})
	return nil
}

// SharePost 分享只有埋点，没有网关写
func (s *PostService) SharePost(userID, feedItemID uint64) {
	s.recordUsage(userID, cons.UsageEventSharePost, feedItemID, nil)
}

// ReportPost 举报动态
func (s *PostService) ReportPost(ctx context.Context, userID, feedItemID uint64, reason, details string) error {
	if err := s.Gateway.ReportFeedItem(ctx, gateway.ReportFeedItemReq{
		FeedItemID:        feedItemID,
		Reason:            reason,
		UserID:            userID,
		AdditionalDetails: details,
	}); err != nil {
		return err
	}
	s.recordUsage(userID, cons.UsageEventReportPost, feedItemID, nil)
	return nil
}
