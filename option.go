package feed_sdk

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type ServiceConfig struct {
	Debug bool
}

type Config struct {
	// GatewayBaseURL 远端 REST 网关地址（必填），例 "https://api.example.com/api"
	GatewayBaseURL string
	// HTTPClient 访问网关用的 http.Client，nil 时用带默认超时的
	HTTPClient *http.Client

	DB          *gorm.DB      // 宿主 DB，可选：埋点事件落库
	RDB         *redis.Client // 宿主 Redis，可选：会话解析
	TablePrefix string
	Service     ServiceConfig

	// PollInterval feed 新内容轮询间隔，默认 30s
	PollInterval time.Duration

	// UsageNotifier 埋点事件推送回调；为空时默认推给引擎的 WsServer
	UsageNotifier func(userID uint64, event []byte)
}

type Option func(*Config)

func WithGatewayBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.GatewayBaseURL = baseURL
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = hc
	}
}

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(RDB *redis.Client) Option {
	return func(c *Config) {
		c.RDB = RDB
	}
}

func WithTablePrefix(prefix string) Option {
	return func(c *Config) {
		c.TablePrefix = prefix
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		c.PollInterval = d
	}
}

func WithUsageNotifier(fn func(userID uint64, event []byte)) Option {
	return func(c *Config) {
		c.UsageNotifier = fn
	}
}

func WithServiceDebug(debug bool) Option {
	return func(c *Config) {
		c.Service.Debug = debug
	}
}
