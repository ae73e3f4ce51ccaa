package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raylin-wellness/feed-sdk/response"
	"github.com/raylin-wellness/feed-sdk/service"
)

const (
	// ContextUserIDKey gin context 里保存 user id 的 key
	ContextUserIDKey = "user_id"
	// ContextUserNameKey gin context 里保存用户名的 key
	ContextUserNameKey = "user_name"
	ContextTokenKey    = "token"
)

// SessionOptions 可选配置。
type SessionOptions struct {
	// HeaderKey 默认 Authorization
	HeaderKey string
	// QueryKey 默认 token
	QueryKey string
	// UserIDKey 默认 user_id
	UserIDKey string
	// UserNameKey 默认 user_name
	UserNameKey string
	// TokenKey 默认 token
	TokenKey string
}

func (o *SessionOptions) withDefaults() SessionOptions {
	if o == nil {
		return SessionOptions{
			HeaderKey:   "Authorization",
			QueryKey:    "token",
			UserIDKey:   ContextUserIDKey,
			UserNameKey: ContextUserNameKey,
			TokenKey:    ContextTokenKey,
		}
	}
	out := *o
	if out.HeaderKey == "" {
		out.HeaderKey = "Authorization"
	}
	if out.QueryKey == "" {
		out.QueryKey = "token"
	}
	if out.UserIDKey == "" {
		out.UserIDKey = ContextUserIDKey
	}
	if out.UserNameKey == "" {
		out.UserNameKey = ContextUserNameKey
	}
	if out.TokenKey == "" {
		out.TokenKey = ContextTokenKey
	}
	return out
}

/*
	GinSessionMiddleware Gin 会话中间件：

- 优先从 Authorization: Bearer <token> 读取
- 如果没有，再从 query 参数读取（默认 token=xxx）
- 解析 token -> 当前用户（Redis）成功后，写入 gin.Context

使用：router.Use(middleware.GinSessionMiddleware(sessionService, nil))
*/
func GinSessionMiddleware(session *service.SessionService, opt *SessionOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		if session == nil {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code: response.CodeInternalError,
				Msg:  "session service is nil",
			})
			return
		}

		// 1) header bearer
		token := ""
		ah := strings.TrimSpace(c.GetHeader(cfg.HeaderKey))
		if ah != "" {
			parts := strings.SplitN(ah, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}

		// 2) query fallback
		if token == "" {
			token = strings.TrimSpace(c.Query(cfg.QueryKey))
		}

		if token == "" {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeSessionInvalid,
				Msg:  "missing token",
			})
			return
		}

		user, err := session.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeSessionInvalid,
				Msg:  err.Error(),
			})
			return
		}

		c.Set(cfg.UserIDKey, user.ID)
		c.Set(cfg.UserNameKey, user.Name)
		c.Set(cfg.TokenKey, token)
		c.Next()
	}
}
