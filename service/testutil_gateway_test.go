package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raylin-wellness/feed-sdk/gateway"
)

// newTestService 起一个假网关，返回指向它的基础 Service。
// handler 由各用例提供，按 path/method 分发断言。
func newTestService(t *testing.T, handler http.Handler) (*Service, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := &Service{Gateway: gateway.New(srv.URL, srv.Client())}
	return s, srv
}
