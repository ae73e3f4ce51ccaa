package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/raylin-wellness/feed-sdk/models"
)

func TestCommunityService_JoinRefreshesAndInvalidates(t *testing.T) {
	var mu sync.Mutex
	joined := []models.CommunityGroup{}
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/join"):
			joined = append(joined, models.CommunityGroup{ID: 9, Name: "runners"})
		case strings.HasPrefix(r.URL.Path, "/community-groups/joined"):
			_ = json.NewEncoder(w).Encode(joined)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	var scopes []FeedScope
	s.Invalidate = func(sc FeedScope) { scopes = append(scopes, sc) }
	svc := NewCommunityService(s)

	if err := svc.Join(context.Background(), 100, 9); err != nil {
		t.Fatalf("Join err: %v", err)
	}
	if !svc.HasJoined(9) {
		t.Fatalf("expected joined cache to include group 9")
	}

	// 圈子流和已加入聚合流都要失效；失效消息只带目标字段，按子集匹配路由
	if len(scopes) != 2 {
		t.Fatalf("expected 2 invalidations, got %d", len(scopes))
	}
	if scopes[0].CommunityGroupID != 9 || scopes[0].Target != "" {
		t.Fatalf("unexpected community scope: %+v", scopes[0])
	}
	if scopes[1].JoinedUserID != 100 {
		t.Fatalf("unexpected joined scope: %+v", scopes[1])
	}
}

func TestCommunityService_JoinedCommunitiesCache(t *testing.T) {
	var gets int
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gets++
		_ = json.NewEncoder(w).Encode([]models.CommunityGroup{{ID: 1, Name: "walkers"}})
	}))
	svc := NewCommunityService(s)
	ctx := context.Background()

	// 第一次：缓存空，走网络
	groups, err := svc.JoinedCommunities(ctx, 100, false)
	if err != nil || len(groups) != 1 {
		t.Fatalf("unexpected first load: %v %+v", err, groups)
	}
	// 第二次：命中缓存
	_, _ = svc.JoinedCommunities(ctx, 100, false)
	if gets != 1 {
		t.Fatalf("expected 1 network call, got %d", gets)
	}
	// refresh=true 强制重拉
	_, _ = svc.JoinedCommunities(ctx, 100, true)
	if gets != 2 {
		t.Fatalf("expected forced refresh, got %d calls", gets)
	}
}
