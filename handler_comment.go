package feed_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raylin-wellness/feed-sdk/models"
	"github.com/raylin-wellness/feed-sdk/response"
	"github.com/raylin-wellness/feed-sdk/service"
)

// -------------------- 评论相关接口 --------------------

// GinHandleCommentTree 某条动态的评论树
// @Summary 某条动态的评论树
// @Description 平铺评论组装成两级树，父级缺失的孤儿回复被丢弃
// @Tags 评论
// @Produce json
// @Param feed_item_id query uint64 true "动态ID"
// @Success 200 {object} response.Response{data=[]service.CommentNode} "评论树"
// @Security BearerAuth
// @Router /comment/tree [get]
func (e *FeedEngine) GinHandleCommentTree(ctx *gin.Context) {
	feedItemID, err := strconv.ParseUint(ctx.Query("feed_item_id"), 10, 64)
	if err != nil || feedItemID == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid feed_item_id"))
		return
	}
	tree, err := e.CommentService.ListCommentTree(ctx.Request.Context(), feedItemID)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(tree))
}

// GinHandleShowAllComments 展开全部评论（带埋点）
// @Summary 展开某条动态的全部评论
// @Tags 评论
// @Produce json
// @Param feed_item_id query uint64 true "动态ID"
// @Success 200 {object} response.Response{data=[]service.CommentNode} "评论树"
// @Security BearerAuth
// @Router /comment/all [get]
func (e *FeedEngine) GinHandleShowAllComments(ctx *gin.Context) {
	feedItemID, err := strconv.ParseUint(ctx.Query("feed_item_id"), 10, 64)
	if err != nil || feedItemID == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid feed_item_id"))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	tree, err := e.CommentService.ShowAllComments(ctx.Request.Context(), uid, feedItemID)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(tree))
}

// GinHandleCommentReplies 某条评论的回复列表
// @Summary 某条评论的回复列表
// @Tags 评论
// @Produce json
// @Param comment_id query uint64 true "评论ID"
// @Success 200 {object} response.Response{data=[]models.Comment} "回复列表"
// @Security BearerAuth
// @Router /comment/replies [get]
func (e *FeedEngine) GinHandleCommentReplies(ctx *gin.Context) {
	commentID, err := strconv.ParseUint(ctx.Query("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid comment_id"))
		return
	}
	replies, err := e.CommentService.ListReplies(ctx.Request.Context(), commentID)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(replies))
}

// GinHandleCreateComment 发表评论或回复
// @Summary 发表评论或回复
// @Description 带 parent_id 时是对某条评论的回复
// @Tags 评论
// @Accept json
// @Produce json
// @Param req body service.CreateCommentReq true "评论内容"
// @Success 200 {object} response.Response{data=models.Comment} "创建成功"
// @Failure 400 {object} response.Response "参数错误"
// @Security BearerAuth
// @Router /comment/create [post]
func (e *FeedEngine) GinHandleCreateComment(ctx *gin.Context) {
	var req service.CreateCommentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	comment, err := e.CommentService.CreateComment(ctx.Request.Context(), uid, req)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(comment))
}

// UpdateCommentReq 修改评论请求
type UpdateCommentReq struct {
	ID      uint64 `json:"id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// GinHandleUpdateComment 修改评论内容
// @Summary 修改评论内容
// @Tags 评论
// @Accept json
// @Produce json
// @Param req body UpdateCommentReq true "新内容"
// @Success 200 {object} response.Response{data=models.Comment} "修改后的评论"
// @Security BearerAuth
// @Router /comment/update [post]
func (e *FeedEngine) GinHandleUpdateComment(ctx *gin.Context) {
	var req UpdateCommentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	comment, err := e.CommentService.UpdateCommentContent(ctx.Request.Context(), req.ID, req.Content)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(comment))
}

// GinHandleDeleteComment 删除评论
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Param feed_item_id query uint64 true "动态ID"
// @Param comment_id query uint64 true "评论ID"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /comment/delete [post]
func (e *FeedEngine) GinHandleDeleteComment(ctx *gin.Context) {
	feedItemID, _ := strconv.ParseUint(ctx.Query("feed_item_id"), 10, 64)
	commentID, err := strconv.ParseUint(ctx.Query("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid comment_id"))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	if err := e.CommentService.DeleteComment(ctx.Request.Context(), uid, feedItemID, commentID); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// LikeCommentReq 评论点赞/取消点赞请求
type LikeCommentReq struct {
	ID             uint64 `json:"id" binding:"required"`
	UserReactionID uint64 `json:"user_reaction_id"`
}

// GinHandleLikeComment 点赞评论
// @Summary 点赞评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param req body LikeCommentReq true "评论ID"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /comment/like [post]
func (e *FeedEngine) GinHandleLikeComment(ctx *gin.Context) {
	var req LikeCommentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	comment := models.Comment{ID: req.ID, UserReactionID: req.UserReactionID}
	if err := e.ReactionService.LikeComment(ctx.Request.Context(), uid, &comment); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(map[string]interface{}{
		"id":               comment.ID,
		"isLiked":          comment.IsLiked,
		"user_reaction_id": comment.UserReactionID,
	}))
}

// GinHandleUnlikeComment 取消点赞评论
// @Summary 取消点赞评论
// @Description 解析不到 reaction id 时是安全 no-op
// @Tags 评论
// @Accept json
// @Produce json
// @Param req body LikeCommentReq true "评论ID（可带内嵌 reaction id）"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /comment/unlike [post]
func (e *FeedEngine) GinHandleUnlikeComment(ctx *gin.Context) {
	var req LikeCommentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	comment := models.Comment{ID: req.ID, UserReactionID: req.UserReactionID}
	if err := e.ReactionService.UnlikeComment(ctx.Request.Context(), uid, &comment); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}

// ReportCommentReq 举报评论请求
type ReportCommentReq struct {
	FeedItemID uint64 `json:"feed_item_id" binding:"required"`
	CommentID  uint64 `json:"comment_id" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
	Details    string `json:"details"`
}

// GinHandleReportComment 举报评论
// @Summary 举报评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param req body ReportCommentReq true "举报信息"
// @Success 200 {object} response.Response "成功"
// @Security BearerAuth
// @Router /comment/report [post]
func (e *FeedEngine) GinHandleReportComment(ctx *gin.Context) {
	var req ReportCommentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	uid, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, response.Error(response.CodeSessionInvalid, "user_id not found"))
		return
	}
	if err := e.CommentService.ReportComment(ctx.Request.Context(), uid, req.FeedItemID, req.CommentID, req.Reason, req.Details); err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeGatewayError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(nil))
}
