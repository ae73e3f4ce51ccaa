package feed_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raylin-wellness/feed-sdk/response"
)

// -------------------- 关注关系相关接口 --------------------

// GinHandleRelationships 当前用户的关注列表
// @Summary 当前用户的关注列表
// @Description 读的是会话期内存缓存，网关故障时返回的是最后一次成功加载的快照
// @Tags 关注关系
// @Produce json
// @Success 200 {object} response.Response{data=[]models.UserRelationship} "关注列表"
// @Security BearerAuth
// @Router /relationship/list [get]
func (e *FeedEngine) GinHandleRelationships(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Success(e.RelationshipService.Relationships()))
}

// GinHandleIsFollowing 是否已关注某用户
// @Summary 是否已关注某用户
// @Tags 关注关系
// @Produce json
// @Param user_id query uint64 true "目标用户ID"
// @Success 200 {object} response.Response "是否已关注"
// @Security BearerAuth
// @Router /relationship/is-following [get]
func (e *FeedEngine) GinHandleIsFollowing(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 64)
	if err != nil || userID == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid user_id"))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]interface{}{
		"user_id":      userID,
		"is_following": e.RelationshipService.IsFollowing(userID),
	}))
}

// FollowReq 关注/取关请求
type FollowReq struct {
	UserID  uint64 `json:"user_id"`
	GroupID uint64 `json:"group_id"`
}

// GinHandleFollow 关注用户或圈子
// @Summary 关注用户或圈子
// @Description 网关写成功后整体重载缓存；失败时缓存不动，错误上抛
// @Tags 关注关系
// @Accept json
// @Produce json
// @Param req body FollowReq true "目标（user_id 和 group_id 二选一）"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /relationship/follow [post]
func (e *FeedEngine) GinHandleFollow(ctx *gin.Context) {
	var req FollowReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	var err error
	switch {
	case req.UserID != 0:
		err = e.RelationshipService.FollowUser(ctx.Request.Context(), req.UserID)
	case req.GroupID != 0:
		err = e.RelationshipService.FollowGroup(ctx.Request.Context(), req.GroupID)
	default:
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "user_id or group_id is required"))
		return
	}
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// GinHandleUnfollow 取关用户或圈子
// @Summary 取关用户或圈子
// @Tags 关注关系
// @Accept json
// @Produce json
// @Param req body FollowReq true "目标（user_id 和 group_id 二选一）"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /relationship/unfollow [post]
func (e *FeedEngine) GinHandleUnfollow(ctx *gin.Context) {
	var req FollowReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	var err error
	switch {
	case req.UserID != 0:
		err = e.RelationshipService.UnfollowUser(ctx.Request.Context(), req.UserID)
	case req.GroupID != 0:
		err = e.RelationshipService.UnfollowGroup(ctx.Request.Context(), req.GroupID)
	default:
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "user_id or group_id is required"))
		return
	}
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
