package feed_sdk

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/raylin-wellness/feed-sdk/gateway"
	"github.com/raylin-wellness/feed-sdk/middleware"
	model "github.com/raylin-wellness/feed-sdk/models"
	"github.com/raylin-wellness/feed-sdk/service"
)

type FeedEngine struct {
	config *Config

	FeedService         *service.FeedService
	PostService         *service.PostService
	StateService        *service.StateService
	CommentService      *service.CommentService
	ReactionService     *service.ReactionService
	RelationshipService *service.RelationshipService
	CommunityService    *service.CommunityService
	UsageService        *service.UsageEventService
	SessionService      *service.SessionService
	WsServer            *WsServer
}

var (
	Instance *FeedEngine
	once     sync.Once
)

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) *FeedEngine {
	once.Do(func() {
		c := &Config{
			TablePrefix: "wf_", // Default
		}
		for _, opt := range opts {
			opt(c)
		}

		Instance = &FeedEngine{config: c}

		// 初始化 WS（新内容提示 / 埋点事件回流的下行通道）
		Instance.WsServer = NewWsServer()
		go Instance.WsServer.Run()

		// 埋点推送默认走 WS
		notifier := c.UsageNotifier
		if notifier == nil {
			notifier = Instance.WsServer.SendToUser
		}

		// 初始化基础 Service，注入回调
		baseService := &service.Service{
			Gateway:       gateway.New(c.GatewayBaseURL, c.HTTPClient),
			DB:            c.DB,
			RDB:           c.RDB,
			TablePrefix:   c.TablePrefix,
			Debug:         c.Service.Debug,
			UsageNotifier: notifier,
		}
		baseService.Usage = service.NewUsageEventService(baseService)

		// 初始化各个 Service
		Instance.FeedService = service.NewFeedService(baseService, c.PollInterval)
		Instance.PostService = service.NewPostService(baseService)
		Instance.StateService = service.NewStateService(baseService)
		Instance.CommentService = service.NewCommentService(baseService)
		Instance.ReactionService = service.NewReactionService(baseService)
		Instance.RelationshipService = service.NewRelationshipService(baseService)
		Instance.CommunityService = service.NewCommunityService(baseService)
		Instance.UsageService = baseService.Usage
		Instance.SessionService = service.NewSessionService(c.RDB)

		// 失效消息路由进分页引擎
		baseService.Invalidate = Instance.FeedService.Invalidate

		// 新内容提示：广播给全部在线前端，由前端转成“看新帖子”按钮
		Instance.FeedService.NewContentNotify = func(scopeKey string) {
			b, _ := json.Marshal(map[string]string{
				"type":  "feed.new_content",
				"scope": scopeKey,
			})
			Instance.WsServer.Broadcast(b)
		}

		// 迁移表
		if c.DB != nil {
			if err := Instance.AutoMigrate(); err != nil {
				log.Printf("AutoMigrate failed: %v", err)
			}
		}
	})

	return Instance
}

// AutoMigrate 建埋点事件表（宿主 DB 配置了才会调）
func (e *FeedEngine) AutoMigrate() error {
	db := e.config.DB
	log.Println("AutoMigrate...")
	return db.AutoMigrate(
		&model.UsageEvent{},
	)
}

// StartSession 会话开始：绑定关系缓存属主并做首次加载。
// 通常在宿主确认当前用户身份后调用一次。
func (e *FeedEngine) StartSession(ctx context.Context, userID uint64) {
	e.RelationshipService.Init(ctx, userID)
}

// EndSession 会话结束：清空关系缓存、停掉全部 feed 轮询，避免定时器泄漏
func (e *FeedEngine) EndSession() {
	e.RelationshipService.Dispose()
	e.FeedService.StopAll()
}

// ServeWS 处理 WebSocket 请求，需要传入 userID
func (e *FeedEngine) ServeWS(w http.ResponseWriter, r *http.Request, userID uint64) {
	e.WsServer.ServeWS(w, r, userID)
}

// HandleWS WebSocket 入口的 Gin Handler。
// 浏览器 WS 握手带不了 Authorization 头，token 走 query（?token=xxx）
func (e *FeedEngine) HandleWS(ctx *gin.Context) {
	user, _, err := e.SessionService.ResolveRequest(ctx.Request.Context(), ctx.Request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
		return
	}
	e.WsServer.ServeWS(ctx.Writer, ctx.Request, user.ID)
}

// GinSessionMiddleware 返回配置好的 Gin 会话中间件
// 使用 FeedEngine 内部的 SessionService 和 Redis 配置
//
// 使用示例:
//
//	engine := feed_sdk.NewEngine(...)
//	r := gin.Default()
//	r.Use(engine.GinSessionMiddleware(nil)) // 使用默认配置
func (e *FeedEngine) GinSessionMiddleware(opt *middleware.SessionOptions) gin.HandlerFunc {
	return middleware.GinSessionMiddleware(e.SessionService, opt)
}
