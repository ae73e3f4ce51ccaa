package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/raylin-wellness/feed-sdk/cons"
	"github.com/raylin-wellness/feed-sdk/gateway"
	"github.com/raylin-wellness/feed-sdk/models"
)

// ErrRelationshipCacheNotReady 关系缓存还没 Init（没有属主）
var ErrRelationshipCacheNotReady = errors.New("relationship cache not initialized")

// relationshipKey 关注边按 (targetType, id) 去重，用户和圈子各自一套编号空间
type relationshipKey struct {
	targetType string
	id         uint64
}

// RelationshipService 关注关系缓存。
//
// 回答“当前用户是否关注了 X”，渲染路径上不走网络。
// 属主（当前用户）随会话 Init/Dispose；写操作（关注/取关）成功后无条件整表
// 重载，宁可多一个往返也不本地猜测。同一用户的并发关注/取关不做显式串行化，
// 最后一次重载赢（可接受）。
type RelationshipService struct {
	*Service

	mu        sync.RWMutex
	ownerID   uint64
	following map[relationshipKey]models.UserRelationship
}

func NewRelationshipService(s *Service) *RelationshipService {
	return &RelationshipService{
		Service:   s,
		following: make(map[relationshipKey]models.UserRelationship),
	}
}

// Init 绑定属主并做首次加载。加载失败不报错（保持空表），后续 Load 可补。
func (s *RelationshipService) Init(ctx context.Context, ownerID uint64) {
	s.mu.Lock()
	s.ownerID = ownerID
	s.following = make(map[relationshipKey]models.UserRelationship)
	s.mu.Unlock()
	s.Load(ctx)
}

// Dispose 会话销毁，清空缓存
func (s *RelationshipService) Dispose() {
	s.mu.Lock()
	s.ownerID = 0
	s.following = make(map[relationshipKey]models.UserRelationship)
	s.mu.Unlock()
}

// Load 从网关整表拉取并替换缓存。
// 网络失败只打日志，保留旧缓存：可用的旧数据好过空数据。
func (s *RelationshipService) Load(ctx context.Context) {
	s.mu.RLock()
	owner := s.ownerID
	s.mu.RUnlock()
	if owner == 0 {
		return
	}

	relationships, err := s.Gateway.ListRelationships(ctx, owner)
	if err != nil {
		log.Printf("load relationships for user %d failed: %v", owner, err)
		return
	}

	next := make(map[relationshipKey]models.UserRelationship, len(relationships))
	for _, rel := range relationships {
		tt := rel.TargetType
		if tt == "" {
			tt = cons.RelationshipTargetUser
		}
		next[relationshipKey{targetType: tt, id: rel.UserID}] = rel
	}

	s.mu.Lock()
	if s.ownerID == owner { // Dispose/换人后丢弃
		s.following = next
	}
	s.mu.Unlock()
}

// IsFollowing 是否关注了某用户。同步查询，无网络副作用。
func (s *RelationshipService) IsFollowing(userID uint64) bool {
	return s.has(relationshipKey{targetType: cons.RelationshipTargetUser, id: userID})
}

// IsFollowingGroup 是否关注了某圈子
func (s *RelationshipService) IsFollowingGroup(groupID uint64) bool {
	return s.has(relationshipKey{targetType: cons.RelationshipTargetGroup, id: groupID})
}

func (s *RelationshipService) has(key relationshipKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.following[key]
	return ok
}

// FollowUser 关注用户。网关失败时错误上抛，缓存不动。
func (s *RelationshipService) FollowUser(ctx context.Context, userID uint64) error {
	return s.follow(ctx, userID, cons.RelationshipTargetUser)
}

// FollowGroup 关注圈子
func (s *RelationshipService) FollowGroup(ctx context.Context, groupID uint64) error {
	return s.follow(ctx, groupID, cons.RelationshipTargetGroup)
}

func (s *RelationshipService) follow(ctx context.Context, targetID uint64, targetType string) error {
	s.mu.RLock()
	owner := s.ownerID
	s.mu.RUnlock()
	if owner == 0 {
		return ErrRelationshipCacheNotReady
	}

	_, err := s.Gateway.CreateRelationship(ctx, gateway.RelationshipReq{
		OwnedByID:        owner,
		UserID:           targetID,
		RelationshipType: cons.RelationshipTypeFollow,
		TargetType:       targetType,
	})
	if err != nil {
		return err
	}

	// 成功后无条件重载同步
	s.Load(ctx)
	s.recordUsage(owner, cons.UsageEventFollow, 0, map[string]any{"target_id": targetID, "target_type": targetType})
	return nil
}

// UnfollowUser 取消关注用户
func (s *RelationshipService) UnfollowUser(ctx context.Context, userID uint64) error {
	return s.unfollow(ctx, userID, cons.RelationshipTargetUser)
}

// UnfollowGroup 取消关注圈子
func (s *RelationshipService) UnfollowGroup(ctx context.Context, groupID uint64) error {
	return s.unfollow(ctx, groupID, cons.RelationshipTargetGroup)
}

func (s *RelationshipService) unfollow(ctx context.Context, targetID uint64, targetType string) error {
	s.mu.RLock()
	owner := s.ownerID
	s.mu.RUnlock()
	if owner == 0 {
		return ErrRelationshipCacheNotReady
	}

	err := s.Gateway.DeleteRelationship(ctx, gateway.RelationshipReq{
		OwnedByID:        owner,
		UserID:           targetID,
		RelationshipType: cons.RelationshipTypeFollow,
		TargetType:       targetType,
	})
	if err != nil {
		return err
	}

	s.Load(ctx)
	s.recordUsage(owner, cons.UsageEventUnfollow, 0, map[string]any{"target_id": targetID, "target_type": targetType})
	return nil
}

// Relationships 缓存快照（调试/展示用）
func (s *RelationshipService) Relationships() []models.UserRelationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserRelationship, 0, len(s.following))
	for _, rel := range s.following {
		out = append(out, rel)
	}
	return out
}
