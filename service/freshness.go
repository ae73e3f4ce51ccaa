package service

import (
	"time"

	"github.com/raylin-wellness/feed-sdk/models"
)

// FreshnessWindow 动态算“新鲜”的时间窗口
const FreshnessWindow = 24 * time.Hour

// IsFresh 发布时间距 now 不足 24 小时即为新鲜。
// 纯函数：真值随时间变化，调用方每次渲染都要重新求值，不能缓存。
func IsFresh(item models.FeedItem, now time.Time) bool {
	return now.Sub(item.CreatedAt) < FreshnessWindow
}

// IsFreshNow 用当前墙钟求值的便捷包装
func (s *Service) IsFreshNow(item models.FeedItem) bool {
	return IsFresh(item, s.now())
}
