package service

import (
	"testing"

	"github.com/raylin-wellness/feed-sdk/models"
)

func uptr(v uint64) *uint64 { return &v }

func TestBuildCommentTree_TwoLevels(t *testing.T) {
	comments := []models.Comment{
		{ID: 1, Content: "root a"},
		{ID: 2, Content: "reply to a", ParentID: uptr(1)},
		{ID: 3, Content: "root b"},
		{ID: 4, Content: "another reply to a", ParentID: uptr(1)},
	}

	tree := BuildCommentTree(comments)
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	if tree[0].ID != 1 || len(tree[0].Replies) != 2 {
		t.Fatalf("unexpected root a: %+v", tree[0])
	}
	if tree[1].ID != 3 || len(tree[1].Replies) != 0 {
		t.Fatalf("unexpected root b: %+v", tree[1])
	}
	if CountCommentTree(tree) != 4 {
		t.Fatalf("expected count 4, got %d", CountCommentTree(tree))
	}
}

func TestBuildCommentTree_OrphanDropped(t *testing.T) {
	comments := []models.Comment{
		{ID: 1, Content: "root"},
		{ID: 2, Content: "child", ParentID: uptr(1)},
		{ID: 3, Content: "orphan", ParentID: uptr(99)}, // 父级不在本批
	}

	tree := BuildCommentTree(comments)
	if len(tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree))
	}
	if len(tree[0].Replies) != 1 || tree[0].Replies[0].ID != 2 {
		t.Fatalf("unexpected replies: %+v", tree[0].Replies)
	}
	if CountCommentTree(tree) != 2 {
		t.Fatalf("orphan must be dropped, count=%d", CountCommentTree(tree))
	}
}

func TestBuildCommentTree_SelfReference(t *testing.T) {
	comments := []models.Comment{
		{ID: 1, Content: "self", ParentID: uptr(1)},
		{ID: 2, Content: "root"},
	}
	tree := BuildCommentTree(comments)
	if len(tree) != 1 || tree[0].ID != 2 {
		t.Fatalf("self-referencing comment must be dropped: %+v", tree)
	}
}

func TestBuildCommentTree_Empty(t *testing.T) {
	if tree := BuildCommentTree(nil); len(tree) != 0 {
		t.Fatalf("expected empty tree, got %+v", tree)
	}
}
