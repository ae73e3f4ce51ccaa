package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/raylin-wellness/feed-sdk/models"
)

func newStateService(t *testing.T, patchCount *int) *StateService {
	t.Helper()
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("unexpected method %s", r.Method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		*patchCount++
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))
	return NewStateService(s)
}

func TestStateService_ViewFromEmptyState(t *testing.T) {
	var patches int
	svc := newStateService(t, &patches)

	// 状态为空视同 Pending
	item := &models.FeedItem{ID: 1, Private: true}
	svc.ViewFeedItem(context.Background(), 100, item)
	if item.State != models.StateViewed {
		t.Fatalf("expected Viewed, got %q", item.State)
	}
	if patches != 1 {
		t.Fatalf("expected 1 patch, got %d", patches)
	}

	// 已 Viewed 再 view 是 no-op
	svc.ViewFeedItem(context.Background(), 100, item)
	if patches != 1 {
		t.Fatalf("second view must not patch, got %d", patches)
	}
}

func TestStateService_OpenSkipsViewed(t *testing.T) {
	var patches int
	svc := newStateService(t, &patches)

	// open 可以从 Pending 直达，不要求先 Viewed
	item := &models.FeedItem{ID: 1, Private: true, State: models.StatePending}
	svc.OpenFeedItem(context.Background(), 100, item)
	if item.State != models.StateOpened {
		t.Fatalf("expected Opened, got %q", item.State)
	}

	svc.OpenFeedItem(context.Background(), 100, item)
	if patches != 1 {
		t.Fatalf("open is idempotent, got %d patches", patches)
	}
}

func TestStateService_SkipTwiceSingleRequest(t *testing.T) {
	var patches int
	svc := newStateService(t, &patches)

	item := &models.FeedItem{ID: 1, Private: true, State: models.StateViewed}
	svc.SkipFeedItem(context.Background(), 100, item)
	svc.SkipFeedItem(context.Background(), 100, item)
	if item.State != models.StateSkipped {
		t.Fatalf("expected Skipped, got %q", item.State)
	}
	if patches != 1 {
		t.Fatalf("expected exactly 1 patch, got %d", patches)
	}
}

func TestStateService_PublicItemNoTransitions(t *testing.T) {
	var patches int
	svc := newStateService(t, &patches)

	// 非私有动态不参与状态机
	item := &models.FeedItem{ID: 1, Private: false}
	svc.ViewFeedItem(context.Background(), 100, item)
	svc.OpenFeedItem(context.Background(), 100, item)
	svc.SkipFeedItem(context.Background(), 100, item)
	if item.State != "" || patches != 0 {
		t.Fatalf("public item must stay untouched, state=%q patches=%d", item.State, patches)
	}
}

func TestStateService_GatewayFailureKeepsState(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	svc := NewStateService(s)

	item := &models.FeedItem{ID: 1, Private: true, State: models.StatePending}
	svc.OpenFeedItem(context.Background(), 100, item)
	// 失败不改内存状态，也不上抛
	if item.State != models.StatePending {
		t.Fatalf("state must not change on failure, got %q", item.State)
	}
}
