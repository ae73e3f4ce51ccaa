package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeFeedPage_StandardObject(t *testing.T) {
	raw := []byte(`{"items":[{"id":1},{"id":2}],"pagination":{"page":2,"pages":5,"limit":2,"total":10}}`)
	page, result := NormalizeFeedPage(raw, 2)
	if result != PageOK {
		t.Fatalf("expected PageOK, got %v", result)
	}
	if len(page.Items) != 2 || page.Pagination.Page != 2 || page.Pagination.Pages != 5 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if !page.Pagination.HasNext() {
		t.Fatalf("expected has next at page 2/5")
	}
}

func TestNormalizeFeedPage_BareArray(t *testing.T) {
	raw := []byte(`[{"id":1},{"id":2},{"id":3}]`)
	page, result := NormalizeFeedPage(raw, 20)
	if result != PageBareArray {
		t.Fatalf("expected PageBareArray, got %v", result)
	}
	// 裸数组视为单独一满页
	p := page.Pagination
	if p.Page != 1 || p.Pages != 1 || p.Limit != 3 || p.Total != 3 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if p.HasNext() {
		t.Fatalf("bare array must not have next page")
	}
}

func TestNormalizeFeedPage_MissingFields(t *testing.T) {
	// items 缺失：补成空数组而不是 nil
	page, result := NormalizeFeedPage([]byte(`{"pagination":{"page":1,"pages":1,"limit":0,"total":0}}`), 20)
	if result != PageMalformed {
		t.Fatalf("expected PageMalformed, got %v", result)
	}
	if page.Items == nil {
		t.Fatalf("items must be non-nil")
	}

	// pagination 缺失：按单页合成
	page, result = NormalizeFeedPage([]byte(`{"items":[{"id":7}]}`), 20)
	if result != PageMalformed {
		t.Fatalf("expected PageMalformed, got %v", result)
	}
	if page.Pagination.Pages != 1 || page.Pagination.Total != 1 {
		t.Fatalf("unexpected synthesized pagination: %+v", page.Pagination)
	}
}

func TestNormalizeFeedPage_UnknownShape(t *testing.T) {
	page, result := NormalizeFeedPage([]byte(`{"whatever":true}`), 20)
	if result != PageMalformed {
		t.Fatalf("expected PageMalformed, got %v", result)
	}
	if len(page.Items) != 0 || page.Pagination.Limit != 0 {
		t.Fatalf("unexpected page: %+v", page)
	}

	page, result = NormalizeFeedPage([]byte(`not json at all`), 20)
	if result != PageMalformed {
		t.Fatalf("expected PageMalformed, got %v", result)
	}
	if page.Pagination.Limit != 20 {
		t.Fatalf("unparseable body keeps requested limit, got %+v", page.Pagination)
	}
}

func TestListFeedItems_TransportFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	page, result := c.ListFeedItems(context.Background(), FeedQuery{Page: 3, Limit: 20})
	if result != PageUnavailable {
		t.Fatalf("expected PageUnavailable, got %v", result)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty items")
	}
	// 降级页 {1,1} 让上层的 hasNext 自然为 false
	if page.Pagination.HasNext() {
		t.Fatalf("degraded page must not have next")
	}
}

func TestPatchFeedItemState_WireFormat(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "state": "Opened"})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	item, err := c.PatchFeedItemState(context.Background(), 42, "Opened")
	if err != nil {
		t.Fatalf("PatchFeedItemState err: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/feed-items/42" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}

	// 网关约定：[{op:replace, path:"state", value}]，path 不带前导斜杠
	var ops []PatchOp
	if err := json.Unmarshal(gotBody, &ops); err != nil {
		t.Fatalf("body not a patch array: %v", err)
	}
	if len(ops) != 1 || ops[0].Op != "replace" || ops[0].Path != "state" || ops[0].Value != "Opened" {
		t.Fatalf("unexpected ops: %+v", ops)
	}
	if item.State != "Opened" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.GetFeedItem(context.Background(), 999)
	if err == nil {
		t.Fatalf("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", apiErr.Status)
	}
}
