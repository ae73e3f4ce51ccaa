package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/raylin-wellness/feed-sdk/models"
)

// PageResult 分页响应的归一化结果标签。
// 网关历史上存在多种响应形态（标准对象 / 裸数组 / 缺字段），
// 这里在边界处显式分支归一化，而不是在上层做运行时形状嗅探。
type PageResult uint8

const (
	PageOK          PageResult = iota // 标准 {items, pagination}
	PageBareArray                     // 裸数组，视为单独一满页
	PageMalformed                     // 形状异常，已补齐安全默认值
	PageUnavailable                   // 网络/网关失败，降级为空页
)

// FeedQuery 动态列表查询参数
type FeedQuery struct {
	Page             int
	Limit            int
	State            models.FeedItemState
	Private          *bool
	CommunityGroupID uint64
	AuthorID         uint64
}

func (q FeedQuery) encode() string {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.State != "" {
		v.Set("state", string(q.State))
	}
	if q.Private != nil {
		v.Set("private", strconv.FormatBool(*q.Private))
	}
	if q.CommunityGroupID > 0 {
		v.Set("communityGroupId", strconv.FormatUint(q.CommunityGroupID, 10))
	}
	if q.AuthorID > 0 {
		v.Set("authorId", strconv.FormatUint(q.AuthorID, 10))
	}
	if enc := v.Encode(); enc != "" {
		return "?" + enc
	}
	return ""
}

// NormalizeFeedPage 把网关的分页响应归一化为 FeedPage。
// - 标准对象：缺 items 补空数组，缺 pagination 按单页合成
// - 裸数组：视为单独一满页
// - 解析失败：空页 + {1,1,requestedLimit,0}
func NormalizeFeedPage(raw []byte, requestedLimit int) (models.FeedPage, PageResult) {
	empty := models.FeedPage{
		Items:      []models.FeedItem{},
		Pagination: models.Pagination{Page: 1, Pages: 1, Limit: requestedLimit, Total: 0},
	}
	if len(raw) == 0 {
		return empty, PageMalformed
	}

	var obj struct {
		Items      []models.FeedItem  `json:"items"`
		Pagination *models.Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Items == nil && obj.Pagination == nil {
			// 可能是裸数组或完全不认识的形状
			var arr []models.FeedItem
			if err := json.Unmarshal(raw, &arr); err == nil && arr != nil {
				return models.FeedPage{
					Items:      arr,
					Pagination: models.Pagination{Page: 1, Pages: 1, Limit: len(arr), Total: len(arr)},
				}, PageBareArray
			}
			// 是合法 JSON 对象但什么都不认识：items 补空数组，pagination 按空页合成
			return models.FeedPage{
				Items:      []models.FeedItem{},
				Pagination: models.Pagination{Page: 1, Pages: 1, Limit: 0, Total: 0},
			}, PageMalformed
		}
		page := models.FeedPage{Items: obj.Items}
		result := PageOK
		if page.Items == nil {
			page.Items = []models.FeedItem{}
			result = PageMalformed
		}
		if obj.Pagination == nil {
			page.Pagination = models.Pagination{Page: 1, Pages: 1, Limit: len(page.Items), Total: len(page.Items)}
			result = PageMalformed
		} else {
			page.Pagination = *obj.Pagination
		}
		return page, result
	}

	var arr []models.FeedItem
	if err := json.Unmarshal(raw, &arr); err == nil {
		return models.FeedPage{
			Items:      arr,
			Pagination: models.Pagination{Page: 1, Pages: 1, Limit: len(arr), Total: len(arr)},
		}, PageBareArray
	}
	return empty, PageMalformed
}

// ListFeedItems 拉取一页动态。传输失败不抛错，降级为空页（PageUnavailable）。
func (c *Client) ListFeedItems(ctx context.Context, q FeedQuery) (models.FeedPage, PageResult) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/feed-items"+q.encode(), nil)
	if err != nil {
		return models.FeedPage{
			Items:      []models.FeedItem{},
			Pagination: models.Pagination{Page: 1, Pages: 1, Limit: q.Limit, Total: 0},
		}, PageUnavailable
	}
	return NormalizeFeedPage(raw, q.Limit)
}

// ListJoinedFeedItems 拉取“已加入社区”聚合流的一页
func (c *Client) ListJoinedFeedItems(ctx context.Context, userID uint64, page, limit int) (models.FeedPage, PageResult) {
	path := fmt.Sprintf("/feed-items/joined?userId=%d&page=%d&limit=%d", userID, page, limit)
	raw, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.FeedPage{
			Items:      []models.FeedItem{},
			Pagination: models.Pagination{Page: 1, Pages: 1, Limit: limit, Total: 0},
		}, PageUnavailable
	}
	return NormalizeFeedPage(raw, limit)
}

// GetFeedItem 拉取单条动态
func (c *Client) GetFeedItem(ctx context.Context, id uint64) (*models.FeedItem, error) {
	var item models.FeedItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/feed-items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateFeedItemReq 发布动态请求
type CreateFeedItemReq struct {
	Content          string   `json:"content"`
	AuthorID         uint64   `json:"author_id"`
	AuthorName       string   `json:"author_name,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
	Private          bool     `json:"private"`
	Targets          []string `json:"targets,omitempty"`
	CommunityGroupID uint64   `json:"community_group_id,omitempty"`
}

// CreateFeedItem 发布动态
func (c *Client) CreateFeedItem(ctx context.Context, req CreateFeedItemReq) (*models.FeedItem, error) {
	var item models.FeedItem
	if err := c.do(ctx, http.MethodPost, "/feed-items/create", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// PatchFeedItemState 局部更新动态状态
func (c *Client) PatchFeedItemState(ctx context.Context, id uint64, state models.FeedItemState) (*models.FeedItem, error) {
	ops := []PatchOp{Replace("state", string(state))}
	var item models.FeedItem
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/feed-items/%d", id), ops, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteFeedItem 删除动态（评论由服务端级联删除）
func (c *Client) DeleteFeedItem(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/feed-items/%d", id), nil, nil)
}
