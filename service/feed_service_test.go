package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raylin-wellness/feed-sdk/models"
)

// pagedFeedHandler 按 ?page= 返回固定分页数据
func pagedFeedHandler(t *testing.T, pages map[string]models.FeedPage) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		data, ok := pages[page]
		if !ok {
			t.Errorf("unexpected page request: %s", r.URL.String())
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(data)
	})
}

func feedItems(ids ...uint64) []models.FeedItem {
	out := make([]models.FeedItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.FeedItem{ID: id, Content: fmt.Sprintf("post %d", id)})
	}
	return out
}

func TestFeedRetriever_SequentialMerge(t *testing.T) {
	s, _ := newTestService(t, pagedFeedHandler(t, map[string]models.FeedPage{
		"1": {Items: feedItems(1, 2), Pagination: models.Pagination{Page: 1, Pages: 2, Limit: 2, Total: 4}},
		"2": {Items: feedItems(3, 4), Pagination: models.Pagination{Page: 2, Pages: 2, Limit: 2, Total: 4}},
	}))
	svc := NewFeedService(s, time.Hour)
	r := svc.Retriever(FeedScope{Target: "home"}, 2)

	if !r.HasNextPage() {
		t.Fatalf("fresh retriever must have next page")
	}

	added := r.NextPage(context.Background())
	if len(added) != 2 || added[0].ID != 1 {
		t.Fatalf("unexpected first page: %+v", added)
	}
	added = r.NextPage(context.Background())
	if len(added) != 2 || added[1].ID != 4 {
		t.Fatalf("unexpected second page: %+v", added)
	}

	items := r.Items()
	if len(items) != 4 {
		t.Fatalf("expected merged 4 items, got %d", len(items))
	}
	if r.HasNextPage() {
		t.Fatalf("page 2/2 must not have next")
	}
	if got := r.NextPage(context.Background()); got != nil {
		t.Fatalf("exhausted retriever must return nil, got %+v", got)
	}
}

func TestFeedRetriever_DedupAcrossPages(t *testing.T) {
	// 第 2 页和第 1 页有重叠（翻页期间上游插入了新内容的典型场景）
	s, _ := newTestService(t, pagedFeedHandler(t, map[string]models.FeedPage{
		"1": {Items: feedItems(1, 2), Pagination: models.Pagination{Page: 1, Pages: 2, Limit: 2, Total: 4}},
		"2": {Items: feedItems(2, 3), Pagination: models.Pagination{Page: 2, Pages: 2, Limit: 2, Total: 4}},
	}))
	svc := NewFeedService(s, time.Hour)
	r := svc.Retriever(FeedScope{}, 2)

	r.NextPage(context.Background())
	added := r.NextPage(context.Background())
	if len(added) != 1 || added[0].ID != 3 {
		t.Fatalf("duplicate must be dropped, added=%+v", added)
	}
	if len(r.Items()) != 3 {
		t.Fatalf("expected 3 unique items, got %d", len(r.Items()))
	}
}

func TestFeedRetriever_InvalidateTriggersRefresh(t *testing.T) {
	var refreshed atomic.Bool
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := feedItems(1, 2)
		if refreshed.Load() {
			items = feedItems(10, 11)
		}
		_ = json.NewEncoder(w).Encode(models.FeedPage{
			Items:      items,
			Pagination: models.Pagination{Page: 1, Pages: 1, Limit: 2, Total: 2},
		})
	}))
	svc := NewFeedService(s, time.Hour)
	r := svc.Retriever(FeedScope{Target: "home"}, 2)

	r.NextPage(context.Background())
	if len(r.Items()) != 2 || r.Items()[0].ID != 1 {
		t.Fatalf("unexpected initial items: %+v", r.Items())
	}

	// 失效只做标记，数据暂时保持可读
	refreshed.Store(true)
	svc.Invalidate(FeedScope{Target: "home"})
	if len(r.Items()) != 2 {
		t.Fatalf("invalidate must not clear items eagerly")
	}

	// 下一次读取整体刷新
	added := r.NextPage(context.Background())
	if len(added) != 2 || added[0].ID != 10 {
		t.Fatalf("expected refreshed first page, got %+v", added)
	}
	if len(r.Items()) != 2 {
		t.Fatalf("old generation must be discarded, got %d items", len(r.Items()))
	}
}

func TestFeedRetriever_ZeroScopeInvalidatesAll(t *testing.T) {
	s, _ := newTestService(t, pagedFeedHandler(t, map[string]models.FeedPage{
		"1": {Items: feedItems(1), Pagination: models.Pagination{Page: 1, Pages: 1, Limit: 1, Total: 1}},
	}))
	svc := NewFeedService(s, time.Hour)
	a := svc.Retriever(FeedScope{Target: "home"}, 1)
	b := svc.Retriever(FeedScope{Target: "social"}, 1)
	a.NextPage(context.Background())
	b.NextPage(context.Background())

	svc.InvalidateAll()
	a.mu.Lock()
	aDirty := a.dirty
	a.mu.Unlock()
	b.mu.Lock()
	bDirty := b.dirty
	b.mu.Unlock()
	if !aDirty || !bDirty {
		t.Fatalf("zero scope must mark every retriever dirty: a=%v b=%v", aDirty, bDirty)
	}
}

func TestFeedRetriever_InvalidateMatchesFieldSubset(t *testing.T) {
	s, _ := newTestService(t, pagedFeedHandler(t, map[string]models.FeedPage{
		"1": {Items: feedItems(1), Pagination: models.Pagination{Page: 1, Pages: 1, Limit: 1, Total: 1}},
	}))
	svc := NewFeedService(s, time.Hour)
	// 处理层建出来的作用域往往带着 Target 等额外字段
	joined := svc.Retriever(FeedScope{Target: "home", JoinedUserID: 7}, 1)
	group := svc.Retriever(FeedScope{Target: "community", CommunityGroupID: 3}, 1)
	other := svc.Retriever(FeedScope{Target: "home", JoinedUserID: 8}, 1)
	joined.NextPage(context.Background())
	group.NextPage(context.Background())
	other.NextPage(context.Background())

	// 加入圈子后发出的两条失效消息
	svc.Invalidate(FeedScope{CommunityGroupID: 3})
	svc.Invalidate(FeedScope{JoinedUserID: 7})

	dirtyOf := func(r *FeedRetriever) bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.dirty
	}
	if !dirtyOf(joined) {
		t.Fatalf("joined feed with extra scope fields must be invalidated")
	}
	if !dirtyOf(group) {
		t.Fatalf("community feed must be invalidated")
	}
	if dirtyOf(other) {
		t.Fatalf("unrelated user's joined feed must stay clean")
	}
}

func TestFeedRetriever_FailureDegradesToNoMore(t *testing.T) {
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	svc := NewFeedService(s, time.Hour)
	r := svc.Retriever(FeedScope{}, 20)

	added := r.NextPage(context.Background())
	if len(added) != 0 {
		t.Fatalf("expected no items on failure, got %+v", added)
	}
	// 降级页 {1,1}：没有更多数据，而不是报错
	if r.HasNextPage() {
		t.Fatalf("failed page must read as exhausted")
	}
}

func TestFeedRetriever_StaleEpochResponseDiscarded(t *testing.T) {
	s, _ := newTestService(t, pagedFeedHandler(t, map[string]models.FeedPage{
		"1": {Items: feedItems(1, 2), Pagination: models.Pagination{Page: 1, Pages: 2, Limit: 2, Total: 4}},
		"2": {Items: feedItems(3, 4), Pagination: models.Pagination{Page: 2, Pages: 2, Limit: 2, Total: 4}},
	}))
	svc := NewFeedService(s, time.Hour)
	r := svc.Retriever(FeedScope{}, 2)

	r.NextPage(context.Background())
	r.mu.Lock()
	staleEpoch := r.epoch
	r.mu.Unlock()

	// Refresh 换代
	r.Refresh(context.Background())

	// 模拟换代前就在途的第 2 页响应到达：合并点按 epoch 丢弃
	added := r.fetchAndMerge(context.Background(), staleEpoch, 2)
	if added != nil {
		t.Fatalf("stale epoch response must be discarded, got %+v", added)
	}
	if len(r.Items()) != 2 {
		t.Fatalf("sequence must stay at refreshed page 1, got %d items", len(r.Items()))
	}
}

func TestFeedRetriever_ProbeSetsNewContentHint(t *testing.T) {
	var phase atomic.Int32
	s, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := feedItems(1, 2)
		if phase.Load() > 0 {
			items = feedItems(99)
		}
		_ = json.NewEncoder(w).Encode(models.FeedPage{
			Items:      items,
			Pagination: models.Pagination{Page: 1, Pages: 1, Limit: len(items), Total: len(items)},
		})
	}))
	svc := NewFeedService(s, time.Hour)

	var notified []string
	svc.NewContentNotify = func(scopeKey string) { notified = append(notified, scopeKey) }

	r := svc.Retriever(FeedScope{Target: "home"}, 2)
	r.NextPage(context.Background())

	// 头部没变：不提示
	r.probe()
	if r.HasNewContent() {
		t.Fatalf("probe with known head must not set hint")
	}

	// 上游出现未见过的头部条目：置位 + 通知一次
	phase.Store(1)
	r.probe()
	if !r.HasNewContent() {
		t.Fatalf("expected new content hint")
	}
	r.probe()
	if len(notified) != 1 {
		t.Fatalf("hint must notify once, got %d", len(notified))
	}

	// 刷新后提示清零
	r.Refresh(context.Background())
	if r.HasNewContent() {
		t.Fatalf("refresh must clear hint")
	}
}
