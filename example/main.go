package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	feed_sdk "github.com/raylin-wellness/feed-sdk"
	"github.com/raylin-wellness/feed-sdk/models"
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// 1. 加载 .env（没有也不报错，走默认值）
	_ = godotenv.Load()

	// 2. 初始化数据库连接（埋点事件落库用，可不配）
	var db *gorm.DB
	if dsn := os.Getenv("FEED_MYSQL_DSN"); dsn != "" {
		var err error
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("数据库连接失败:", err)
		}
	}

	// 3. 初始化 Redis（会话存储用）
	rdb := redis.NewClient(&redis.Options{
		Addr:     env("FEED_REDIS_ADDR", "127.0.0.1:6379"),
		Password: os.Getenv("FEED_REDIS_PASSWORD"),
	})

	// 4. 初始化 Feed Engine（单例模式，全局只需调用一次）
	engine := feed_sdk.NewEngine(
		feed_sdk.WithGatewayBaseURL(env("FEED_GATEWAY_URL", "http://127.0.0.1:9000")),
		feed_sdk.WithDB(db),
		feed_sdk.WithRDB(rdb),
		feed_sdk.WithTablePrefix("wf_"),
		feed_sdk.WithPollInterval(30*time.Second),
	)

	// 5. 创建 Gin 路由
	r := gin.Default()

	// 设置 CORS（如果需要）
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 注册 Swagger UI
	feed_sdk.RegisterSwagger(r, "/swagger/*any")

	// 演示用的登录入口：换发一个会话 token 并预热关系缓存。
	// 真实部署里 token 由宿主的账号体系签发，这里只演示绑定流程。
	r.POST("/login", func(c *gin.Context) {
		var req struct {
			UserID uint64 `json:"user_id" binding:"required"`
			Name   string `json:"name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		token := uuid.NewString()
		user := models.CurrentUser{ID: req.UserID, Name: req.Name}
		if err := engine.SessionService.BindSession(c.Request.Context(), token, user, 7*24*time.Hour); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		engine.StartSession(context.Background(), req.UserID)
		c.JSON(200, gin.H{"token": token})
	})

	// 6. WebSocket 连接路由（新内容提示和埋点回推都走这条连接）
	// 客户端连接：ws://localhost:6789/ws?token=YOUR_TOKEN
	r.GET("/ws", engine.HandleWS)

	// 7. API 路由组（统一挂会话中间件）
	api := r.Group("/api/v1")
	api.Use(engine.GinSessionMiddleware(nil))

	// 动态流模块
	feedAPI := api.Group("/feed")
	{
		feedAPI.GET("/page", engine.GinHandleFeedPage)
		feedAPI.POST("/next", engine.GinHandleFeedNext)
		feedAPI.POST("/refresh", engine.GinHandleFeedRefresh)
		feedAPI.POST("/watch", engine.GinHandleFeedWatch)
		feedAPI.GET("/item", engine.GinHandleGetPost)
		feedAPI.POST("/create", engine.GinHandleCreatePost)
		feedAPI.POST("/delete", engine.GinHandleDeletePost)
		feedAPI.POST("/view", engine.GinHandleViewPost)
		feedAPI.POST("/open", engine.GinHandleOpenPost)
		feedAPI.POST("/skip", engine.GinHandleSkipPost)
		feedAPI.POST("/like", engine.GinHandleLikePost)
		feedAPI.POST("/unlike", engine.GinHandleUnlikePost)
		feedAPI.POST("/share", engine.GinHandleSharePost)
		feedAPI.POST("/report", engine.GinHandleReportPost)
	}

	// 评论模块
	commentAPI := api.Group("/comment")
	{
		commentAPI.GET("/tree", engine.GinHandleCommentTree)
		commentAPI.GET("/all", engine.GinHandleShowAllComments)
		commentAPI.GET("/replies", engine.GinHandleCommentReplies)
		commentAPI.POST("/create", engine.GinHandleCreateComment)
		commentAPI.POST("/update", engine.GinHandleUpdateComment)
		commentAPI.POST("/delete", engine.GinHandleDeleteComment)
		commentAPI.POST("/like", engine.GinHandleLikeComment)
		commentAPI.POST("/unlike", engine.GinHandleUnlikeComment)
		commentAPI.POST("/report", engine.GinHandleReportComment)
	}

	// 关注关系模块
	relAPI := api.Group("/relationship")
	{
		relAPI.GET("/list", engine.GinHandleRelationships)
		relAPI.GET("/is-following", engine.GinHandleIsFollowing)
		relAPI.POST("/follow", engine.GinHandleFollow)
		relAPI.POST("/unfollow", engine.GinHandleUnfollow)
	}

	// 圈子模块
	communityAPI := api.Group("/community")
	{
		communityAPI.GET("/list", engine.GinHandleCommunityGroups)
		communityAPI.GET("/detail", engine.GinHandleCommunityGroup)
		communityAPI.POST("/join", engine.GinHandleJoinCommunity)
		communityAPI.GET("/joined", engine.GinHandleJoinedCommunities)
	}

	// 埋点模块
	api.GET("/usage/recent", engine.GinHandleRecentUsageEvents)

	// 8. 启动服务器
	log.Println("Feed Server 启动在 :6789")
	log.Println("Swagger UI: http://localhost:6789/swagger/index.html")
	log.Println("WebSocket 地址: ws://localhost:6789/ws?token=YOUR_TOKEN")
	if err := r.Run(":6789"); err != nil {
		log.Fatal("服务器启动失败:", err)
	}
}
