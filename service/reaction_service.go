package service

import (
	"context"
	"sync"

	"github.com/raylin-wellness/feed-sdk/cons"
	"github.com/raylin-wellness/feed-sdk/gateway"
	"github.com/raylin-wellness/feed-sdk/models"
)

const reactionTypeLike = "like"

// ReactionService 点赞/取消点赞。
//
// 配对约定：点赞时记住服务端发的 reaction id，取消点赞要用它删除。
// id 不在本地（比如“已赞”状态来自服务端数据）时，从目标内嵌的 reaction 引用兜底；
// 都拿不到就安全 no-op，不把错误抛给用户。
type ReactionService struct {
	*Service

	mu               sync.Mutex
	itemReactions    map[uint64]uint64 // feedItemID -> reactionID
	commentReactions map[uint64]uint64 // commentID -> reactionID
}

func NewReactionService(s *Service) *ReactionService {
	return &ReactionService{
		Service:          s,
		itemReactions:    make(map[uint64]uint64),
		commentReactions: make(map[uint64]uint64),
	}
}

// LikeFeedItem 点赞动态。已点过（本地有 id）时是幂等 no-op。
// 成功后失效 feed 作用域，由分页引擎在下一次读取时重拉。
func (s *ReactionService) LikeFeedItem(ctx context.Context, userID uint64, item *models.FeedItem) error {
	s.mu.Lock()
	_, already := s.itemReactions[item.ID]
	s.mu.Unlock()
	if already {
		return nil
	}

	reaction, err := s.Gateway.CreateReaction(ctx, gateway.CreateReactionReq{
		UserID:       userID,
		ReactionType: reactionTypeLike,
		FeedItemID:   item.ID,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.itemReactions[item.ID] = reaction.ID
	s.mu.Unlock()

	item.IsLiked = true
	item.UserReactionID = reaction.ID
	s.invalidate(FeedScope{})
	s.recordUsage(userID, cons.UsageEventLikePost, item.ID, nil)
	return nil
}

// UnlikeFeedItem 取消点赞。解析不到 reaction id 时安全 no-op。
func (s *ReactionService) UnlikeFeedItem(ctx context.Context, userID uint64, item *models.FeedItem) error {
	s.mu.Lock()
	reactionID := s.itemReactions[item.ID]
	s.mu.Unlock()
	if reactionID == 0 {
		// 本地没有：尝试内嵌引用
		reactionID = item.UserReactionID
	}
	if reactionID == 0 {
		return nil
	}

	if err := s.Gateway.DeleteReaction(ctx, reactionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.itemReactions, item.ID)
	s.mu.Unlock()

	item.IsLiked = false
	item.UserReactionID = 0
	s.invalidate(FeedScope{})
	s.recordUsage(userID, cons.UsageEventUnlikePost, item.ID, nil)
	return nil
}

// LikeComment 点赞评论
func (s *ReactionService) LikeComment(ctx context.Context, userID uint64, comment *models.Comment) error {
	s.mu.Lock()
	_, already := s.commentReactions[comment.ID]
	s.mu.Unlock()
	if already {
		return nil
	}

	reaction, err := s.Gateway.CreateReaction(ctx, gateway.CreateReactionReq{
		UserID:       userID,
		ReactionType: reactionTypeLike,
		CommentID:    comment.ID,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.commentReactions[comment.ID] = reaction.ID
	s.mu.Unlock()

	comment.IsLiked = true
	comment.UserReactionID = reaction.ID
	return nil
}

// UnlikeComment 取消点赞评论。同样：拿不到 id 就 no-op。
func (s *ReactionService) UnlikeComment(ctx context.Context, userID uint64, comment *models.Comment) error {
	s.mu.Lock()
	reactionID := s.commentReactions[comment.ID]
	s.mu.Unlock()
	if reactionID == 0 {
		reactionID = comment.UserReactionID
	}
	if reactionID == 0 {
		return nil
	}

	if err := s.Gateway.DeleteReaction(ctx, reactionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.commentReactions, comment.ID)
	s.mu.Unlock()

	comment.IsLiked = false
	comment.UserReactionID = 0
	return nil
}
