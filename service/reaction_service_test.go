package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/raylin-wellness/feed-sdk/models"
)

type reactionCalls struct {
	creates int
	deletes []string // 被删除的 path
}

func newReactionService(t *testing.T, calls *reactionCalls) *ReactionService {
	t.Helper()
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/user-reactions":
			calls.creates++
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 777, "reactionType": "like"})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/user-reactions/"):
			calls.deletes = append(calls.deletes, r.URL.Path)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return NewReactionService(s)
}

func TestReactionService_LikeThenUnlike(t *testing.T) {
	var calls reactionCalls
	svc := newReactionService(t, &calls)
	ctx := context.Background()

	item := &models.FeedItem{ID: 5}
	if err := svc.LikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("LikeFeedItem err: %v", err)
	}
	if !item.IsLiked || item.UserReactionID != 777 {
		t.Fatalf("unexpected item after like: %+v", item)
	}

	// 重复点赞是幂等 no-op
	if err := svc.LikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("second like err: %v", err)
	}
	if calls.creates != 1 {
		t.Fatalf("expected 1 create, got %d", calls.creates)
	}

	// 取消点赞删的是配对记下的 reaction id
	if err := svc.UnlikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("UnlikeFeedItem err: %v", err)
	}
	if len(calls.deletes) != 1 || calls.deletes[0] != "/user-reactions/777" {
		t.Fatalf("unexpected deletes: %v", calls.deletes)
	}
	if item.IsLiked || item.UserReactionID != 0 {
		t.Fatalf("unexpected item after unlike: %+v", item)
	}
}

func TestReactionService_DoubleUnlikeIsNoop(t *testing.T) {
	var calls reactionCalls
	svc := newReactionService(t, &calls)
	ctx := context.Background()

	item := &models.FeedItem{ID: 5}
	if err := svc.LikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("like err: %v", err)
	}
	if err := svc.UnlikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("first unlike err: %v", err)
	}

	// 第二次取消：id 已清空，不发请求，不报错
	if err := svc.UnlikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("second unlike must be noop, got err: %v", err)
	}
	if len(calls.deletes) != 1 {
		t.Fatalf("expected 1 delete, got %d", len(calls.deletes))
	}
}

func TestReactionService_UnlikeFallsBackToEmbeddedID(t *testing.T) {
	var calls reactionCalls
	svc := newReactionService(t, &calls)

	// “已赞”状态来自服务端数据，本地没有配对记录
	item := &models.FeedItem{ID: 5, IsLiked: true, UserReactionID: 321}
	if err := svc.UnlikeFeedItem(context.Background(), 100, item); err != nil {
		t.Fatalf("unlike err: %v", err)
	}
	if len(calls.deletes) != 1 || calls.deletes[0] != "/user-reactions/321" {
		t.Fatalf("expected embedded id delete, got %v", calls.deletes)
	}
}

func TestReactionService_CommentLikeIndependentOfItems(t *testing.T) {
	var calls reactionCalls
	svc := newReactionService(t, &calls)
	ctx := context.Background()

	comment := &models.Comment{ID: 5}
	if err := svc.LikeComment(ctx, 100, comment); err != nil {
		t.Fatalf("LikeComment err: %v", err)
	}
	if !comment.IsLiked {
		t.Fatalf("expected liked comment")
	}

	// 同 id 的动态不受评论配对表影响
	item := &models.FeedItem{ID: 5}
	if err := svc.LikeFeedItem(ctx, 100, item); err != nil {
		t.Fatalf("LikeFeedItem err: %v", err)
	}
	if calls.creates != 2 {
		t.Fatalf("expected 2 creates, got %d", calls.creates)
	}
}
