package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raylin-wellness/feed-sdk/gateway"
	"github.com/raylin-wellness/feed-sdk/models"
)

// 默认 30s 轮询一次“上游可能有新内容”
const defaultPollInterval = 30 * time.Second

// FeedScope 一条 feed 流的查询范围（全站流 / 圈子流 / 已加入社区聚合流）
type FeedScope struct {
	Target           string // cons.FeedTarget*，只参与 key 区分
	CommunityGroupID uint64
	AuthorID         uint64
	JoinedUserID     uint64 // 非 0 走 /feed-items/joined
	Private          *bool
	State            models.FeedItemState
}

// Covers 失效消息按字段子集匹配：sc 里设置的字段与 other 全部相等即命中。
// 零值 sc 不带任何约束，覆盖所有作用域。
func (sc FeedScope) Covers(other FeedScope) bool {
	if sc.Target != "" && sc.Target != other.Target {
		return false
	}
	if sc.CommunityGroupID != 0 && sc.CommunityGroupID != other.CommunityGroupID {
		return false
	}
	if sc.AuthorID != 0 && sc.AuthorID != other.AuthorID {
		return false
	}
	if sc.JoinedUserID != 0 && sc.JoinedUserID != other.JoinedUserID {
		return false
	}
	if sc.Private != nil && (other.Private == nil || *sc.Private != *other.Private) {
		return false
	}
	if sc.State != "" && sc.State != other.State {
		return false
	}
	return true
}

// Key 作用域标识，retriever 注册表按它去重
func (sc FeedScope) Key() string {
	p := ""
	if sc.Private != nil {
		p = fmt.Sprintf("%t", *sc.Private)
	}
	return fmt.Sprintf("%s/c%d/a%d/j%d/p%s/s%s",
		sc.Target, sc.CommunityGroupID, sc.AuthorID, sc.JoinedUserID, p, sc.State)
}

// FeedService 分页合并引擎。
// 每个作用域一个 FeedRetriever，维护“无限”的有序去重序列；
// 写操作通过 Invalidate 发失效消息，由 retriever 在下一次读取时决定重拉。
type FeedService struct {
	*Service

	PollInterval time.Duration

	// NewContentNotify 新内容提示回调（engine 里接 WS 广播），参数是作用域 key
	NewContentNotify func(scopeKey string)

	mu         sync.Mutex
	retrievers map[string]*FeedRetriever
}

func NewFeedService(s *Service, pollInterval time.Duration) *FeedService {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &FeedService{
		Service:      s,
		PollInterval: pollInterval,
		retrievers:   make(map[string]*FeedRetriever),
	}
}

// FetchPage 无状态拉取一页（已归一化，失败降级为空页，绝不抛错）
func (s *FeedService) FetchPage(ctx context.Context, scope FeedScope, page, limit int) (models.FeedPage, gateway.PageResult) {
	if scope.JoinedUserID > 0 {
		return s.Gateway.ListJoinedFeedItems(ctx, scope.JoinedUserID, page, limit)
	}
	return s.Gateway.ListFeedItems(ctx, gateway.FeedQuery{
		Page:             page,
		Limit:            limit,
		State:            scope.State,
		Private:          scope.Private,
		CommunityGroupID: scope.CommunityGroupID,
		AuthorID:         scope.AuthorID,
	})
}

// Retriever 取（或创建）作用域对应的 retriever
func (s *FeedService) Retriever(scope FeedScope, limit int) *FeedRetriever {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := scope.Key()
	if r, ok := s.retrievers[key]; ok {
		return r
	}
	r := newFeedRetriever(s, scope, limit)
	s.retrievers[key] = r
	return r
}

// Invalidate 作用域失效。按字段子集匹配（见 Covers）：
// 传 {CommunityGroupID: 9} 会命中所有该圈子的流，不管 Target 等其它字段；
// 零值 scope 代表“全部 feed 作用域”。只做标记，不触发网络。
func (s *FeedService) Invalidate(scope FeedScope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.retrievers {
		if scope.Covers(r.scope) {
			r.markDirty()
		}
	}
}

// InvalidateAll 全部作用域失效
func (s *FeedService) InvalidateAll() { s.Invalidate(FeedScope{}) }

// StopAll 停掉全部 retriever 的轮询（会话销毁时调用，避免定时器泄漏）
func (s *FeedService) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.retrievers {
		r.StopWatch()
	}
}

// FeedRetriever 单作用域的懒加载序列。
//
// 并发模型：页请求用 fetchMu 串行化（第 N 页合并前绝不发第 N+1 页）；
// 数据用 mu 保护，网络期间不持有 mu。Refresh 换代（epoch），
// 在途的旧代响应在合并点对比 epoch 后直接丢弃。
type FeedRetriever struct {
	svc   *FeedService
	scope FeedScope
	limit int

	fetchMu sync.Mutex

	mu    sync.Mutex
	epoch string
	page  int // 已合并到的页号，0 = 还没拉过
	pages int
	items []models.FeedItem
	seen  map[uint64]struct{}
	dirty bool
	fresh bool

	watchOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
}

func newFeedRetriever(svc *FeedService, scope FeedScope, limit int) *FeedRetriever {
	if limit <= 0 {
		limit = 20
	}
	return &FeedRetriever{
		svc:   svc,
		scope: scope,
		limit: limit,
		epoch: uuid.NewString(),
		pages: 1,
		seen:  make(map[uint64]struct{}),
		stop:  make(chan struct{}),
	}
}

// Items 当前已合并序列的快照
func (r *FeedRetriever) Items() []models.FeedItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.FeedItem, len(r.items))
	copy(out, r.items)
	return out
}

// HasNextPage 还能继续翻页
func (r *FeedRetriever) HasNextPage() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasNextLocked()
}

func (r *FeedRetriever) hasNextLocked() bool {
	if r.page == 0 {
		return true
	}
	return r.page < r.pages
}

// HasNewContent 上游可能有新内容（提示，不是保证）
func (r *FeedRetriever) HasNewContent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fresh
}

func (r *FeedRetriever) markDirty() {
	r.mu.Lock()
	r.dirty = true
	r.mu.Unlock()
}

// NextPage 拉取并合并下一页，返回本次新增的条目。
// 分页失败降级为“没有更多数据”，不会返回错误。
// 若作用域已被失效，会先整体 Refresh 再返回第一页。
func (r *FeedRetriever) NextPage(ctx context.Context) []models.FeedItem {
	r.fetchMu.Lock()
	defer r.fetchMu.Unlock()

	r.mu.Lock()
	if r.dirty {
		r.mu.Unlock()
		return r.refreshLocked(ctx)
	}
	if !r.hasNextLocked() {
		r.mu.Unlock()
		return nil
	}
	epoch := r.epoch
	next := r.page + 1
	r.mu.Unlock()

	return r.fetchAndMerge(ctx, epoch, next)
}

// Refresh 丢弃全部已合并页，从第 1 页原子性重启序列
func (r *FeedRetriever) Refresh(ctx context.Context) []models.FeedItem {
	r.fetchMu.Lock()
	defer r.fetchMu.Unlock()
	return r.refreshLocked(ctx)
}

// refreshLocked 需要持有 fetchMu
func (r *FeedRetriever) refreshLocked(ctx context.Context) []models.FeedItem {
	r.mu.Lock()
	r.epoch = uuid.NewString()
	r.page = 0
	r.pages = 1
	r.items = nil
	r.seen = make(map[uint64]struct{})
	r.dirty = false
	r.fresh = false
	epoch := r.epoch
	r.mu.Unlock()

	return r.fetchAndMerge(ctx, epoch, 1)
}

// fetchAndMerge 拉取指定页并按拉取顺序合并（不重排序，顺序以服务端返回为准）。
// 合并前校验 epoch：Refresh 换代后在途响应直接丢弃。
func (r *FeedRetriever) fetchAndMerge(ctx context.Context, epoch string, page int) []models.FeedItem {
	norm, _ := r.svc.FetchPage(ctx, r.scope, page, r.limit)

	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		// 过期响应
		return nil
	}

	var added []models.FeedItem
	for _, it := range norm.Items {
		if _, dup := r.seen[it.ID]; dup {
			continue
		}
		r.seen[it.ID] = struct{}{}
		added = append(added, it)
	}
	r.items = append(r.items, added...)

	r.page = norm.Pagination.Page
	if r.page <= 0 {
		r.page = page
	}
	r.pages = norm.Pagination.Pages
	if r.pages < 1 {
		r.pages = 1
	}
	return added
}

// StartNewContentWatch 启动新内容轮询。只会启动一次；Stop 后不可重启。
// 轮询只探测首页头部并置位提示，绝不悄悄替换已合并序列。
func (r *FeedRetriever) StartNewContentWatch() {
	r.watchOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(r.svc.PollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-r.stop:
					return
				case <-ticker.C:
					r.probe()
				}
			}
		}()
	})
}

// StopWatch 停止轮询（幂等）
func (r *FeedRetriever) StopWatch() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// probe 拉首页第一条，跟已合并序列比对；发现未见过的头部条目就置位提示
func (r *FeedRetriever) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	norm, result := r.svc.FetchPage(ctx, r.scope, 1, 1)
	if result == gateway.PageUnavailable || len(norm.Items) == 0 {
		return
	}
	head := norm.Items[0].ID

	r.mu.Lock()
	_, known := r.seen[head]
	turnedFresh := !known && !r.fresh
	if !known {
		r.fresh = true
	}
	r.mu.Unlock()

	if turnedFresh && r.svc.NewContentNotify != nil {
		r.svc.NewContentNotify(r.scope.Key())
	}
}
