package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/raylin-wellness/feed-sdk/cons"
	"github.com/raylin-wellness/feed-sdk/models"
)

// fakeRelationshipGateway 内存版关系存储，关注边按 (targetType, id) 存，失败可注入
type fakeRelationshipGateway struct {
	mu        sync.Mutex
	following map[relationshipKey]bool
	failWrite bool
	failRead  bool
}

func userFollows(ids ...uint64) map[relationshipKey]bool {
	m := make(map[relationshipKey]bool, len(ids))
	for _, id := range ids {
		m[relationshipKey{targetType: cons.RelationshipTargetUser, id: id}] = true
	}
	return m
}

func newRelationshipService(t *testing.T, fake *fakeRelationshipGateway) *RelationshipService {
	t.Helper()
	if fake.following == nil {
		fake.following = make(map[relationshipKey]bool)
	}
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			if fake.failRead {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			out := make([]models.UserRelationship, 0, len(fake.following))
			for k := range fake.following {
				out = append(out, models.UserRelationship{
					ID:               k.id,
					UserID:           k.id,
					RelationshipType: "follow",
					TargetType:       k.targetType,
				})
			}
			_ = json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			if fake.failWrite {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			var req struct {
				UserID     uint64 `json:"userId"`
				TargetType string `json:"targetType"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			fake.following[relationshipKey{targetType: req.TargetType, id: req.UserID}] = true
			_ = json.NewEncoder(w).Encode(models.UserRelationship{ID: req.UserID, UserID: req.UserID, TargetType: req.TargetType})
		case http.MethodDelete:
			if fake.failWrite {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			uid, _ := strconv.ParseUint(r.URL.Query().Get("userId"), 10, 64)
			delete(fake.following, relationshipKey{targetType: r.URL.Query().Get("targetType"), id: uid})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	return NewRelationshipService(s)
}

func TestRelationshipService_FollowUpdatesCache(t *testing.T) {
	fake := &fakeRelationshipGateway{}
	svc := newRelationshipService(t, fake)
	ctx := context.Background()

	svc.Init(ctx, 1)
	if svc.IsFollowing(5) {
		t.Fatalf("fresh cache must be empty")
	}

	if err := svc.FollowUser(ctx, 5); err != nil {
		t.Fatalf("FollowUser err: %v", err)
	}
	// 写成功后整表重载，缓存立即可见
	if !svc.IsFollowing(5) {
		t.Fatalf("expected following after FollowUser")
	}

	if err := svc.UnfollowUser(ctx, 5); err != nil {
		t.Fatalf("UnfollowUser err: %v", err)
	}
	if svc.IsFollowing(5) {
		t.Fatalf("expected not following after UnfollowUser")
	}
}

func TestRelationshipService_GroupAndUserEdgesSeparate(t *testing.T) {
	fake := &fakeRelationshipGateway{}
	svc := newRelationshipService(t, fake)
	ctx := context.Background()

	svc.Init(ctx, 1)
	if err := svc.FollowGroup(ctx, 5); err != nil {
		t.Fatalf("FollowGroup err: %v", err)
	}

	// 圈子 5 和用户 5 是两套编号空间，互不串味
	if !svc.IsFollowingGroup(5) {
		t.Fatalf("expected group 5 followed")
	}
	if svc.IsFollowing(5) {
		t.Fatalf("group follow must not count as user follow")
	}

	if err := svc.FollowUser(ctx, 5); err != nil {
		t.Fatalf("FollowUser err: %v", err)
	}
	if err := svc.UnfollowGroup(ctx, 5); err != nil {
		t.Fatalf("UnfollowGroup err: %v", err)
	}
	if !svc.IsFollowing(5) || svc.IsFollowingGroup(5) {
		t.Fatalf("unfollow group must leave the user edge intact")
	}
}

func TestRelationshipService_FailedWriteKeepsCache(t *testing.T) {
	fake := &fakeRelationshipGateway{following: userFollows(5)}
	svc := newRelationshipService(t, fake)
	ctx := context.Background()

	svc.Init(ctx, 1)
	if !svc.IsFollowing(5) {
		t.Fatalf("expected preloaded follow edge")
	}

	// 网关写失败：错误上抛，缓存保持原状
	fake.mu.Lock()
	fake.failWrite = true
	fake.mu.Unlock()
	if err := svc.UnfollowUser(ctx, 5); err == nil {
		t.Fatalf("expected error from failed unfollow")
	}
	if !svc.IsFollowing(5) {
		t.Fatalf("failed write must not touch cache")
	}
}

func TestRelationshipService_NotReadyBeforeInit(t *testing.T) {
	fake := &fakeRelationshipGateway{}
	svc := newRelationshipService(t, fake)

	if err := svc.FollowUser(context.Background(), 5); err != ErrRelationshipCacheNotReady {
		t.Fatalf("expected ErrRelationshipCacheNotReady, got %v", err)
	}
}

func TestRelationshipService_DisposeClearsCache(t *testing.T) {
	fake := &fakeRelationshipGateway{following: userFollows(5)}
	svc := newRelationshipService(t, fake)
	ctx := context.Background()

	svc.Init(ctx, 1)
	if !svc.IsFollowing(5) {
		t.Fatalf("expected follow edge after init")
	}

	svc.Dispose()
	if svc.IsFollowing(5) {
		t.Fatalf("dispose must clear cache")
	}
	if len(svc.Relationships()) != 0 {
		t.Fatalf("expected empty snapshot after dispose")
	}
}

func TestRelationshipService_LoadFailureKeepsStale(t *testing.T) {
	fake := &fakeRelationshipGateway{following: userFollows(5)}
	svc := newRelationshipService(t, fake)
	ctx := context.Background()

	svc.Init(ctx, 1)

	// 之后网关完全不可用：Load 静默失败，旧快照保留
	fake.mu.Lock()
	fake.failRead = true
	fake.mu.Unlock()

	svc.Load(ctx)
	if !svc.IsFollowing(5) {
		t.Fatalf("failed load must keep stale cache")
	}
}
