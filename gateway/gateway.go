package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client 远端网关 REST 客户端。
// 网关是唯一数据源，SDK 不做重试；非 2xx 统一抛 *APIError，由调用方决定降级策略。
type Client struct {
	baseURL string
	http    *http.Client
}

// New 创建网关客户端。hc 为 nil 时使用带默认超时的 http.Client。
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// APIError 网关返回非 2xx
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: status %d: %s", e.Status, e.Body)
}

// PatchOp JSON-Patch 风格的局部更新操作（网关的 PATCH 约定）
type PatchOp struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// Replace 构造一个 replace 操作。
// 网关的 path 不带前导斜杠（如 "state"），与 RFC6902 不同，照约定原样发送。
func Replace(path string, value interface{}) PatchOp {
	return PatchOp{Op: "replace", Path: path, Value: value}
}

// doRaw 发送请求并返回原始响应体。body 非 nil 时以 JSON 发送。
func (c *Client) doRaw(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}

// do 发送请求并把响应 JSON 解到 out（out 可为 nil，例如 DELETE）。
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	data, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
