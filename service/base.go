package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/raylin-wellness/feed-sdk/gateway"
)

// Service 基础服务，包含网关客户端和配置
type Service struct {
	Gateway     *gateway.Client
	DB          *gorm.DB      // 宿主 DB（可选，埋点事件落库用）
	RDB         *redis.Client // 宿主 Redis（可选，会话解析用）
	TablePrefix string
	Debug       bool

	// UsageNotifier 埋点事件推送回调。
	// 避免循环依赖，通过函数注入（engine 里通常接 WsServer.SendToUser）。
	UsageNotifier func(userID uint64, event []byte)

	// Invalidate 作用域失效消息，由 engine 注入 FeedService.Invalidate。
	// 写操作成功后调用，由分页引擎决定何时真正重新拉取。
	Invalidate func(scope FeedScope)

	// Usage 埋点事件服务（落库 + 尽力推送）
	Usage *UsageEventService

	// Clock 取当前时间，测试可替换
	Clock func() time.Time
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// invalidate 空安全地发失效消息
func (s *Service) invalidate(scope FeedScope) {
	if s.Invalidate != nil {
		s.Invalidate(scope)
	}
}

// recordUsage 空安全地记录埋点；任何失败都不影响主流程
func (s *Service) recordUsage(userID uint64, eventType string, feedItemID uint64, payload any) {
	if s.Usage != nil {
		s.Usage.Record(userID, eventType, feedItemID, payload)
	}
}
