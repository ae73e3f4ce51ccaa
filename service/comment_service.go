package service

import (
	"context"
	"errors"
	"strings"

	"github.com/raylin-wellness/feed-sdk/cons"
	"github.com/raylin-wellness/feed-sdk/gateway"
	"github.com/raylin-wellness/feed-sdk/models"
)

// CommentService 评论读写。
// 评论不做乐观本地插入：写成功 -> 失效 -> 重拉，正确性优先于体感延迟。
type CommentService struct{ *Service }

func NewCommentService(s *Service) *CommentService { return &CommentService{Service: s} }

// ListComments 拉取动态的全部评论（平铺）。每次都是全量，树由调用方重建。
func (s *CommentService) ListComments(ctx context.Context, feedItemID uint64) ([]models.Comment, error) {
	return s.Gateway.ListComments(ctx, feedItemID)
}

// ListCommentTree 拉取并组装评论树
func (s *CommentService) ListCommentTree(ctx context.Context, feedItemID uint64) ([]*CommentNode, error) {
	comments, err := s.Gateway.ListComments(ctx, feedItemID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}

// ShowAllComments 展开全部评论（regular 列表之外补一条埋点）
func (s *CommentService) ShowAllComments(ctx context.Context, userID, feedItemID uint64) ([]*CommentNode, error) {
	tree, err := s.ListCommentTree(ctx, feedItemID)
	if err != nil {
		return nil, err
	}
	s.recordUsage(userID, cons.UsageEventShowAllComments, feedItemID, nil)
	return tree, nil
}

// ListReplies 拉取某条评论的回复
func (s *CommentService) ListReplies(ctx context.Context, commentID uint64) ([]models.Comment, error) {
	return s.Gateway.ListCommentReplies(ctx, commentID)
}

// CreateCommentReq 发表评论/回复
type CreateCommentReq struct {
	FeedItemID uint64  `json:"feed_item_id" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	ParentID   *uint64 `json:"parent_id"`
	AuthorName string  `json:"author_name"`
}

// CreateComment 发表评论，成功后失效 feed 作用域（评论数变了）
func (s *CommentService) CreateComment(ctx context.Context, userID uint64, req CreateCommentReq) (*models.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}
	out, err := s.Gateway.CreateComment(ctx, gateway.CreateCommentReq{
		Content:       req.Content,
		UserID:        userID,
		AuthorName:    req.AuthorName,
		ParentID:      req.ParentID,
		CommentableID: req.FeedItemID,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(FeedScope{})
	s.recordUsage(userID, cons.UsageEventCreateComment, req.FeedItemID, map[string]uint64{"comment_id": out.ID})
	return out, nil
}

// UpdateCommentContent 编辑评论，只改 content 单字段
func (s *CommentService) UpdateCommentContent(ctx context.Context, id uint64, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("content is required")
	}
	return s.Gateway.UpdateCommentContent(ctx, id, content)
}

// DeleteComment 删除评论，成功后失效 feed 作用域
func (s *CommentService) DeleteComment(ctx context.Context, userID, feedItemID, commentID uint64) error {
	if err := s.Gateway.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.invalidate(FeedScope{})
	s.recordUsage(userID, cons.UsageEventDeleteComment, feedItemID, map[string]uint64{"comment_id": commentID})
	return nil
}

// ReportComment 举报评论
func (s *CommentService) ReportComment(ctx context.Context, userID, feedItemID, commentID uint64, reason, details string) error {
	if err := s.Gateway.ReportComment(ctx, gateway.ReportCommentReq{
		CommentID:         commentID,
		Reason:            reason,
		UserID:            userID,
		AdditionalDetails: details,
	}); err != nil {
		return err
	}
	s.recordUsage(userID, cons.UsageEventReportComment, feedItemID, map[string]uint64{"comment_id": commentID})
	return nil
}
