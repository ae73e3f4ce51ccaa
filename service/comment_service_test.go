package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/raylin-wellness/feed-sdk/models"
)

func TestCommentService_ListCommentTree(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 网关把平铺评论包在 comments 字段里
		_ = json.NewEncoder(w).Encode(map[string]any{
			"comments": []models.Comment{
				{ID: 1, Content: "root"},
				{ID: 2, Content: "reply", ParentID: uptr(1)},
				{ID: 3, Content: "orphan", ParentID: uptr(42)},
			},
		})
	}))
	svc := NewCommentService(s)

	tree, err := svc.ListCommentTree(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListCommentTree err: %v", err)
	}
	if len(tree) != 1 || len(tree[0].Replies) != 1 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
}

func TestCommentService_CreateCommentInvalidates(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Comment{ID: 10, Content: "hi"})
	}))

	var invalidated int
	s.Invalidate = func(FeedScope) { invalidated++ }
	svc := NewCommentService(s)

	out, err := svc.CreateComment(context.Background(), 100, CreateCommentReq{FeedItemID: 7, Content: "hi"})
	if err != nil {
		t.Fatalf("CreateComment err: %v", err)
	}
	if out.ID != 10 {
		t.Fatalf("unexpected comment: %+v", out)
	}
	if invalidated != 1 {
		t.Fatalf("create must invalidate feed scopes, got %d", invalidated)
	}
}

func TestCommentService_EmptyContentRejected(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("gateway must not be called for empty content")
	}))
	svc := NewCommentService(s)

	if _, err := svc.CreateComment(context.Background(), 100, CreateCommentReq{FeedItemID: 7, Content: "   "}); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := svc.UpdateCommentContent(context.Background(), 1, ""); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCommentService_ListReplies(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/3/replies" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"replies": []models.Comment{{ID: 4, ParentID: uptr(3)}},
		})
	}))
	svc := NewCommentService(s)

	replies, err := svc.ListReplies(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListReplies err: %v", err)
	}
	if len(replies) != 1 || replies[0].ID != 4 {
		t.Fatalf("unexpected replies: %+v", replies)
	}
}
