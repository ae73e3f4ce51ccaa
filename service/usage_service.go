package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/raylin-wellness/feed-sdk/models"
)

// UsageEventService 埋点事件管道。
// 约定：先落库（配了 DB 时），再尽力通过回调推送；两步任何失败都只打日志，
// 绝不让埋点失败影响触发它的业务操作。
type UsageEventService struct {
	*Service
}

func NewUsageEventService(s *Service) *UsageEventService {
	return &UsageEventService{Service: s}
}

// usageEventEnvelope 推送给回调/WS 的事件信封
type usageEventEnvelope struct {
	EventUUID  string          `json:"event_uuid"`
	UserID     uint64          `json:"user_id"`
	EventType  string          `json:"event_type"`
	FeedItemID uint64          `json:"feed_item_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Record 记录一条埋点事件（fire-and-forget）
func (s *UsageEventService) Record(userID uint64, eventType string, feedItemID uint64, payload any) {
	if eventType == "" {
		return
	}

	var pl datatypes.JSON
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Printf("marshal usage payload: %v", err)
		} else {
			pl = b
		}
	}

	evt := &models.UsageEvent{
		EventUUID:  uuid.NewString(),
		UserID:     userID,
		EventType:  eventType,
		FeedItemID: feedItemID,
		Payload:    pl,
		CreatedAt:  s.now(),
	}

	delivered := s.push(evt)
	evt.Delivered = delivered

	if s.DB != nil {
		if err := s.DB.Create(evt).Error; err != nil {
			log.Printf("persist usage event %s: %v", eventType, err)
		}
	}
}

// push 尽力把事件送到回调；回调 panic 也不外溢
func (s *UsageEventService) push(evt *models.UsageEvent) (ok bool) {
	if s.UsageNotifier == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("usage notifier panic: %v", r)
			ok = false
		}
	}()

	b, err := json.Marshal(usageEventEnvelope{
		EventUUID:  evt.EventUUID,
		UserID:     evt.UserID,
		EventType:  evt.EventType,
		FeedItemID: evt.FeedItemID,
		Payload:    json.RawMessage(evt.Payload),
	})
	if err != nil {
		log.Printf("marshal usage event: %v", err)
		return false
	}
	s.UsageNotifier(evt.UserID, b)
	return true
}

// RecentEvents 拉取某用户最近的埋点事件（宿主侧排查/离线消费用）
func (s *UsageEventService) RecentEvents(userID uint64, limit int) ([]models.UsageEvent, error) {
	if s.DB == nil {
		return []models.UsageEvent{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var events []models.UsageEvent
	err := s.DB.
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
