package service

import (
	"context"
	"log"
	"sync"

	"github.com/raylin-wellness/feed-sdk/models"
)

// CommunityService 社区圈子：列表、加入、已加入集合。
// 已加入集合是派生缓存，加入成功后整体刷新。
type CommunityService struct {
	*Service

	mu     sync.RWMutex
	joined map[uint64]models.CommunityGroup
}

func NewCommunityService(s *Service) *CommunityService {
	return &CommunityService{
		Service: s,
		joined:  make(map[uint64]models.CommunityGroup),
	}
}

// ListGroups 全部圈子
func (s *CommunityService) ListGroups(ctx context.Context) ([]models.CommunityGroup, error) {
	return s.Gateway.ListCommunityGroups(ctx)
}

// GetGroup 单个圈子
func (s *CommunityService) GetGroup(ctx context.Context, id uint64) (*models.CommunityGroup, error) {
	return s.Gateway.GetCommunityGroup(ctx, id)
}

// Join 加入圈子。成功后刷新已加入集合，并失效“已加入社区聚合流”。
func (s *CommunityService) Join(ctx context.Context, userID, groupID uint64) error {
	if err := s.Gateway.JoinCommunityGroup(ctx, groupID, userID); err != nil {
		return err
	}
	s.refreshJoined(ctx, userID)
	// 按字段匹配：不带 Target，命中该圈子的所有流以及该用户的聚合流
	s.invalidate(FeedScope{CommunityGroupID: groupID})
	s.invalidate(FeedScope{JoinedUserID: userID})
	return nil
}

// JoinedCommunities 已加入圈子。refresh=true 强制重拉，否则优先用缓存。
func (s *CommunityService) JoinedCommunities(ctx context.Context, userID uint64, refresh bool) ([]models.CommunityGroup, error) {
	s.mu.RLock()
	n := len(s.joined)
	s.mu.RUnlock()

	if refresh || n == 0 {
		groups, err := s.Gateway.ListJoinedCommunities(ctx, userID)
		if err != nil {
			return nil, err
		}
		next := make(map[uint64]models.CommunityGroup, len(groups))
		for _, g := range groups {
			next[g.ID] = g
		}
		s.mu.Lock()
		s.joined = next
		s.mu.Unlock()
		return groups, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CommunityGroup, 0, len(s.joined))
	for _, g := range s.joined {
		out = append(out, g)
	}
	return out, nil
}

// HasJoined 是否已加入某圈子（只看缓存）
func (s *CommunityService) HasJoined(groupID uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.joined[groupID]
	return ok
}

func (s *CommunityService) refreshJoined(ctx context.Context, userID uint64) {
	groups, err := s.Gateway.ListJoinedCommunities(ctx, userID)
	if err != nil {
		// 读失败降级：留旧缓存
		log.Printf("refresh joined communities for user %d failed: %v", userID, err)
		return
	}
	next := make(map[uint64]models.CommunityGroup, len(groups))
	for _, g := range groups {
		next[g.ID] = g
	}
	s.mu.Lock()
	s.joined = next
	s.mu.Unlock()
}
