package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	prefix = "wf_"
)

// UsageEvent 埋点事件表（宿主 DB 本地留痕）
// 约定：状态流转/社交操作成功后先落库，再尽力通过回调推送；推送失败不影响主流程。
type UsageEvent struct {
	ID         uint64         `gorm:"primarykey"`
	EventUUID  string         `gorm:"size:36;uniqueIndex;not null"` // 对外事件 ID
	UserID     uint64         `gorm:"index"`                        // 操作者，0 表示未知
	EventType  string         `gorm:"size:50;index;not null"`       // cons.UsageEvent*
	FeedItemID uint64         `gorm:"index"`                        // 关联动态，可为 0
	Payload    datatypes.JSON `gorm:"type:json"`                    // 附加载荷
	Delivered  bool           `gorm:"default:false"`                // 是否已成功推送
	CreatedAt  time.Time
}

func (UsageEvent) TableName() string { return prefix + "usage_event" }
