package feed_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raylin-wellness/feed-sdk/models"
	"github.com/raylin-wellness/feed-sdk/response"
	"github.com/raylin-wellness/feed-sdk/service"
)

// -------------------- 动态流（Feed）相关接口 --------------------

// currentUserID 从 gin context 取会话中间件写入的 user id
func currentUserID(ctx *gin.Context) (uint64, bool) {
	uid, exists := ctx.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := uid.(uint64)
	return id, ok
}

// parseFeedScope 从 query 解析作用域（全站流 / 圈子流 / 已加入聚合流）
func parseFeedScope(ctx *gin.Context) service.FeedScope {
	scope := service.FeedScope{Target: ctx.Query("target")}
	if v, err := strconv.ParseUint(ctx.Query("communityGroupId"), 10, 64); err == nil {
		scope.CommunityGroupID = v
	}
	if v, err := strconv.ParseUint(ctx.Query("authorId"), 10, 64); err == nil {
		scope.AuthorID = v
	}
	if ctx.Query("joined") == "true" {
		if uid, ok := currentUserID(ctx); ok {
			scope.JoinedUserID = uid
		}
	}
	if p := ctx.Query("private"); p != "" {
		b := p == "true"
		scope.Private = &b
	}
	if st := ctx.Query("state"); st != "" {
		scope.State = models.FeedItemState(st)
	}
	return scope
}

// GinHandleFeedPage 拉取一页动态
// @Summary 拉取一页动态
// @Description 按作用域拉取一页；网关响应已归一化，失败降级为空页
// @Tags 动态流
// @Accept json
// @Produce json
// @Param page query int false "页号，从1开始"
// @Param limit query int false "每页数量"
// @Param target query string false "场景(home/social/community/...)"
// @Param communityGroupId query uint64 false "圈子ID"
// @Param authorId query uint64 false "作者ID"
// @Param joined query bool false "已加入社区聚合流"
// @Success 200 {object} response.Response{data=models.FeedPage} "一页动态"
// @Security BearerAuth
// @Router /feed/page [get]
func (e *FeedEngine) GinHandleFeedPage(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	result, _ := e.FeedService.FetchPage(ctx.Request.Context(), parseFeedScope(ctx), page, limit)
	ctx.JSON(http.StatusOK, response.Success(result))
}

// feedSliceResp retriever 读取的响应体
type feedSliceResp struct {
	Items         []models.FeedItem `json:"items"`
	HasNextPage   bool              `json:"has_next_page"`
	HasNewContent bool              `json:"has_new_content"`
}

// GinHandleFeedNext 合并序列翻下一页
// @Summary 合并序列翻下一页
// @Description 返回本次新增条目；作用域被失效时会自动整体刷新
// @Tags 动态流
// @Accept json
// @Produce json
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=feedSliceResp} "新增条目"
// @Security BearerAuth
// @Router /feed/next [post]
func (e *FeedEngine) GinHandleFeedNext(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	r := e.FeedService.Retriever(parseFeedScope(ctx), limit)
	added := r.NextPage(ctx.Request.Context())
	ctx.JSON(http.StatusOK, response.Success(feedSliceResp{
		Items:         added,
		HasNextPage:   r.HasNextPage(),
		HasNewContent: r.HasNewContent(),
	}))
}

// GinHandleFeedRefresh 整体刷新（“看新帖子”按钮）
// @Summary 整体刷新合并序列
// @Description 丢弃全部已合并页，从第1页原子性重启
// @Tags 动态流
// @Accept json
// @Produce json
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=feedSliceResp} "第一页"
// @Security BearerAuth
// @Router /feed/refresh [post]
func (e *FeedEngine) GinHandleFeedRefresh(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	r := e.FeedService.Retriever(parseFeedScope(ctx), limit)
	items := r.Refresh(ctx.Request.Context())
	ctx.JSON(http.StatusOK, response.Success(feedSliceResp{
		Items:         items,
		HasNextPage:   r.HasNextPage(),
		HasNewContent: r.HasNewContent(),
	}))
}

// GinHandleFeedWatch 启动新内容轮询
// @Summary 启动新内容轮询
// @Description 按作用域起 30s 轮询，发现新头部条目时通过 WS 广播提示
// @Tags 动态流
// @Produce json
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /feed/watch [post]
func (e *FeedEngine) GinHandleFeedWatch(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	e.FeedService.Retriever(parseFeedScope(ctx), limit).StartNewContentWatch()
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleCreatePost 发布动态
// @Summary 发布动态
// @Tags 动态流
// @Accept json
// @Produce json
// @Param req body service.CreatePostReq true "动态内容"
// @Success 200 {object} response.Response{data=models.FeedItem} "创建成功"
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Security BearerAuth
// @Router /feed/create [post]
func (e *FeedEngine) GinHandleCreatePost(ctx *gin.Context) {
	var req service.CreatePostReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}

	item, err := e.PostService.CreatePost(ctx.Request.Context(), uid, req)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// GinHandleDeletePost 删除动态
// @Summary 删除动态
// @Tags 动态流
// @Produce json
// @Param id query uint64 true "动态ID"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /feed/delete [post]
func (e *FeedEngine) GinHandleDeletePost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	if err := e.PostService.DeletePost(ctx.Request.Context(), uid, id); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleGetPost 拉取单条动态
// @Summary 拉取单条动态
// @Tags 动态流
// @Produce json
// @Param id query uint64 true "动态ID"
// @Success 200 {object} response.Response{data=models.FeedItem} "动态详情"
// @Security BearerAuth
// @Router /feed/item [get]
func (e *FeedEngine) GinHandleGetPost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return
	}
	item, err := e.PostService.GetPost(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeNotFound, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(item))
}

// FeedItemStateReq 状态流转请求：客户端回传条目当前快照，守卫在服务端复核
type FeedItemStateReq struct {
	ID      uint64               `json:"id" binding:"required"`
	Private bool                 `json:"private"`
	State   models.FeedItemState `json:"state"`
}

func (e *FeedEngine) handleTransition(ctx *gin.Context, do func(userID uint64, item *models.FeedItem)) {
	var req FeedItemStateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}

	item := models.FeedItem{ID: req.ID, Private: req.Private, State: req.State}
	do(uid, &item)
	// 守卫不通过时静默 no-op，state 原样返回
	ctx.JSON(http.StatusOK, response.Success(map[string]interface{}{
		"id":    item.ID,
		"state": item.State,
	}))
}

// GinHandleViewPost 动态进入可视区
// @Summary 标记动态已浏览
// @Tags 动态状态
// @Accept json
// @Produce json
// @Param req body FeedItemStateReq true "条目快照"
// @Success 200 {object} response.Response "流转后状态（守卫不通过时原样返回）"
// @Security BearerAuth
// @Router /feed/view [post]
func (e *FeedEngine) GinHandleViewPost(ctx *gin.Context) {
	e.handleTransition(ctx, func(uid uint64, item *models.FeedItem) {
		e.StateService.ViewFeedItem(ctx.Request.Context(), uid, item)
	})
}

// GinHandleOpenPost 用户主动打开动态
// @Summary 标记动态已打开
// @Tags 动态状态
// @Accept json
// @Produce json
// @Param req body FeedItemStateReq true "条目快照"
// @Success 200 {object} response.Response "流转后状态"
// @Security BearerAuth
// @Router /feed/open [post]
func (e *FeedEngine) GinHandleOpenPost(ctx *gin.Context) {
	e.handleTransition(ctx, func(uid uint64, item *models.FeedItem) {
		e.StateService.OpenFeedItem(ctx.Request.Context(), uid, item)
	})
}

// GinHandleSkipPost 跳过动态
// @Summary 跳过动态
// @Tags 动态状态
// @Accept json
// @Produce json
// @Param req body FeedItemStateReq true "条目快照"
// @Success 200 {object} response.Response "流转后状态"
// @Security BearerAuth
// @Router /feed/skip [post]
func (e *FeedEngine) GinHandleSkipPost(ctx *gin.Context) {
	e.handleTransition(ctx, func(uid uint64, item *models.FeedItem) {
		e.StateService.SkipFeedItem(ctx.Request.Context(), uid, item)
	})
}

// LikePostReq 点赞/取消点赞请求
type LikePostReq struct {
	ID uint64 `json:"id" binding:"required"`
	// UserReactionID 服务端内嵌的 reaction id（取消点赞的兜底）
	UserReactionID uint64 `json:"user_reaction_id"`
}

// GinHandleLikePost 点赞动态
// @Summary 点赞动态
// @Tags 动态流
// @Accept json
// @Produce json
// @Param req body LikePostReq true "动态ID"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /feed/like [post]
func (e *FeedEngine) GinHandleLikePost(ctx *gin.Context) {
	var req LikePostReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	item := models.FeedItem{ID: req.ID, UserReactionID: req.UserReactionID}
	if err := e.ReactionService.LikeFeedItem(ctx.Request.Context(), uid, &item); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]interface{}{
		"id":               item.ID,
		"isLiked":          item.IsLiked,
		"user_reaction_id": item.UserReactionID,
	}))
}

// GinHandleUnlikePost 取消点赞动态
// @Summary 取消点赞动态
// @Description 解析不到 reaction id 时是安全 no-op
// @Tags 动态流
// @Accept json
// @Produce json
// @Param req body LikePostReq true "动态ID（可带内嵌 reaction id）"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /feed/unlike [post]
func (e *FeedEngine) GinHandleUnlikePost(ctx *gin.Context) {
	var req LikePostReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	item := models.FeedItem{ID: req.ID, UserReactionID: req.UserReactionID}
	if err := e.ReactionService.UnlikeFeedItem(ctx.Request.Context(), uid, &item); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleSharePost 分享动态（只有埋点）
// @Summary 分享动态
// @Tags 动态流
// @Produce json
// @Param id query uint64 true "动态ID"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /feed/share [post]
func (e *FeedEngine) GinHandleSharePost(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	e.PostService.SharePost(uid, id)
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// ReportPostReq 举报动态请求
type ReportPostReq struct {
	ID      uint64 `json:"id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
	Details string `json:"details"`
}

// GinHandleReportPost 举报动态
// @Summary 举报动态
// @Tags 动态流
// @Accept json
// @Produce json
// @Param req body ReportPostReq true "举报信息"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /feed/report [post]
func (e *FeedEngine) GinHandleReportPost(ctx *gin.Context) {
	var req ReportPostReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	if err := e.PostService.ReportPost(ctx.Request.Context(), uid, req.ID, req.Reason, req.Details); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
