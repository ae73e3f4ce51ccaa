package service

import (
	"context"
	"log"

	"github.com/raylin-wellness/feed-sdk/cons"
	"github.com/raylin-wellness/feed-sdk/models"
)

// StateService 动态生命周期状态机。
//
// 状态：Pending → Viewed → Opened，另有独立终态 Skipped，只对私有动态生效。
// 这不是严格全序状态机，而是一组守卫门控的平铺变更：
// Opened 可以从任何非 Opened 状态直达（open 是用户主动行为，view 只是被动可见），
// 不要求先经过 Viewed。守卫不通过时静默 no-op，不算错误。
type StateService struct{ *Service }

func NewStateService(s *Service) *StateService { return &StateService{Service: s} }

// CanView view 守卫：私有且尚未进入任何状态（或还在 Pending）
func CanView(item *models.FeedItem) bool {
	return item.Private && (item.State == "" || item.State == models.StatePending)
}

// CanOpen open 守卫：私有且还没打开过（幂等门控，不做顺序门控）
func CanOpen(item *models.FeedItem) bool {
	return item.Private && item.State != models.StateOpened
}

// CanSkip skip 守卫：私有且还没跳过
func CanSkip(item *models.FeedItem) bool {
	return item.Private && item.State != models.StateSkipped
}

// ViewFeedItem 动态进入可视区
func (s *StateService) ViewFeedItem(ctx context.Context, userID uint64, item *models.FeedItem) {
	if !CanView(item) {
		return
	}
	s.transition(ctx, userID, item, models.StateViewed, cons.UsageEventViewPost)
}

// OpenFeedItem 用户主动打开动态
func (s *StateService) OpenFeedItem(ctx context.Context, userID uint64, item *models.FeedItem) {
	if !CanOpen(item) {
		return
	}
	s.transition(ctx, userID, item, models.StateOpened, cons.UsageEventOpenPost)
}

// SkipFeedItem 跳过动态。重复调用是安全 no-op，不会发第二次网关请求。
func (s *StateService) SkipFeedItem(ctx context.Context, userID uint64, item *models.FeedItem) {
	if !CanSkip(item) {
		return
	}
	s.transition(ctx, userID, item, models.StateSkipped, cons.UsageEventSkipPost)
}

// transition 统一流转：先发 PATCH，成功后才改内存状态（失败无需回滚），
// 然后补一条埋点事件（尽力而为，失败不影响流转结果）。
func (s *StateService) transition(ctx context.Context, userID uint64, item *models.FeedItem, state models.FeedItemState, eventType string) {
	if _, err := s.Gateway.PatchFeedItemState(ctx, item.ID, state); err != nil {
		log.Printf("feed item %d -> %s failed: %v", item.ID, state, err)
		return
	}
	item.State = state
	s.recordUsage(userID, eventType, item.ID, nil)
}
