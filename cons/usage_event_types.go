package cons

// 统一的埋点事件类型（event_type）
const (
	UsageEventCreateComment   = "create_comment"    // 发表评论
	UsageEventShowAllComments = "show_all_comments" // 展开全部评论
	UsageEventFollow          = "follow"            // 关注
	UsageEventUnfollow        = "unfollow"          // 取消关注
	UsageEventLikePost        = "like_post"         // 点赞动态
	UsageEventUnlikePost      = "unlike_post"       // 取消点赞动态
	UsageEventSharePost       = "share_post"        // 分享动态
	UsageEventReportPost      = "report_post"       // 举报动态
	UsageEventReportComment   = "report_comment"    // 举报评论
	UsageEventDeleteComment   = "delete_comment"    // 删除评论
	UsageEventViewPost        = "view_post"         // 动态进入可视区
	UsageEventOpenPost        = "open_post"         // 用户主动打开动态
	UsageEventSkipPost        = "skip_post"         // 跳过动态
)

// 关系类型
const (
	RelationshipTypeFollow = "follow"

	RelationshipTargetUser  = "user"
	RelationshipTargetGroup = "group"
)

// Feed 目标场景
const (
	FeedTargetCollections = "collections"
	FeedTargetCommunity   = "community"
	FeedTargetHome        = "home"
	FeedTargetSocial      = "social"
	FeedTargetTrack       = "track"
)
