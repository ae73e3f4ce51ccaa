package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/raylin-wellness/feed-sdk/models"
)

const (
	// 默认会话过期时间
	defaultSessionTTL = 7 * 24 * time.Hour
)

// SessionService 当前用户身份解析。
// 注意：SDK 不做登录/发 token（那是宿主的事）；宿主登录成功后 BindSession
// 把 token -> 用户身份写进 Redis，SDK 只负责同步解析。
//
// Redis Key 设计：
// - wf:session:{token} -> CurrentUser JSON (String, TTL)
type SessionService struct {
	rdb *redis.Client
}

func NewSessionService(rdb *redis.Client) *SessionService {
	return &SessionService{rdb: rdb}
}

func (s *SessionService) ensure() error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis client is nil")
	}
	return nil
}

func (s *SessionService) sessionKey(token string) string {
	return "wf:session:" + token
}

// BindSession 保存 token -> 用户身份映射
func (s *SessionService) BindSession(ctx context.Context, token string, user models.CurrentUser, ttl time.Duration) error {
	if err := s.ensure(); err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("token is required")
	}
	if user.ID == 0 {
		return fmt.Errorf("user id is required")
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.sessionKey(token), b, ttl).Err()
}

// ResolveSession 根据 token 取用户身份
func (s *SessionService) ResolveSession(ctx context.Context, token string) (models.CurrentUser, error) {
	var user models.CurrentUser
	if err := s.ensure(); err != nil {
		return user, err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return user, fmt.Errorf("missing token")
	}

	val, err := s.rdb.Get(ctx, s.sessionKey(token)).Result()
	if err == redis.Nil {
		return user, fmt.Errorf("session not found or expired")
	}
	if err != nil {
		return user, err
	}
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return user, fmt.Errorf("corrupt session payload: %w", err)
	}
	return user, nil
}

// RevokeSession 注销会话
func (s *SessionService) RevokeSession(ctx context.Context, token string) error {
	if err := s.ensure(); err != nil {
		return err
	}
	return s.rdb.Del(ctx, s.sessionKey(token)).Err()
}

// ExtractToken 从 HTTP 请求提取 token：优先 Authorization: Bearer，其次 query: token
func (s *SessionService) ExtractToken(r *http.Request) string {
	if r == nil {
		return ""
	}

	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah != "" {
		parts := strings.SplitN(ah, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// ResolveRequest 从请求里抽 token 并解析身份
func (s *SessionService) ResolveRequest(ctx context.Context, r *http.Request) (models.CurrentUser, string, error) {
	t := s.ExtractToken(r)
	user, err := s.ResolveSession(ctx, t)
	return user, t, err
}
