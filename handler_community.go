package feed_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raylin-wellness/feed-sdk/response"
)

// -------------------- 圈子与埋点相关接口 --------------------

// GinHandleCommunityGroups 圈子列表
// @Summary 圈子列表
// @Tags 圈子
// @Produce json
// @Success 200 {object} response.Response{data=[]models.CommunityGroup} "圈子列表"
// @Security BearerAuth
// @Router /community/list [get]
func (e *FeedEngine) GinHandleCommunityGroups(ctx *gin.Context) {
	groups, err := e.CommunityService.ListGroups(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(groups))
}

// GinHandleCommunityGroup 圈子详情
// @Summary 圈子详情
// @Tags 圈子
// @Produce json
// @Param id query uint64 true "圈子ID"
// @Success 200 {object} response.Response{data=models.CommunityGroup} "圈子详情"
// @Security BearerAuth
// @Router /community/detail [get]
func (e *FeedEngine) GinHandleCommunityGroup(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid id"))
		return
	}
	group, err := e.CommunityService.GetGroup(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeNotFound, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(group))
}

// GinHandleJoinCommunity 加入圈子
// @Summary 加入圈子
// @Description 成功后刷新已加入缓存并失效对应的 feed 作用域
// @Tags 圈子
// @Produce json
// @Param id query uint64 true "圈子ID"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /community/join [post]
func (e *FeedEngine) GinHandleJoinCommunity(ctx *gin.Context) {
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
	if err := e.CommunityService.Join(ctx.Request.Context(), uid, id); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleJoinedCommunities 已加入的圈子
// @Summary 当前用户已加入的圈子
// @Tags 圈子
// @Produce json
// @Param refresh query bool false "强制重新拉取"
// @Success 200 {object} response.Response{data=[]models.CommunityGroup} "已加入圈子"
// @Security BearerAuth
// @Router /community/joined [get]
func (e *FeedEngine) GinHandleJoinedCommunities(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	groups, err := e.CommunityService.JoinedCommunities(ctx.Request.Context(), uid, ctx.Query("refresh") == "true")
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(groups))
}

// GinHandleRecentUsageEvents 最近埋点事件
// @Summary 当前用户最近的埋点事件
// @Description 从本地落库的事件日志读取，按时间倒序
// @Tags 埋点
// @Produce json
// @Param limit query int false "条数上限，默认50"
// @Success 200 {object} response.Response{data=[]models.UsageEvent} "事件列表"
// @Security BearerAuth
// @Router /usage/recent [get]
func (e *FeedEngine) GinHandleRecentUsageEvents(ctx *gin.Context) {
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	if limit <= 0 {
		limit = 50
	}
	events, err := e.UsageService.RecentEvents(uid, limit)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeInternalError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(events))
}
