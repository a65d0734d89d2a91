package model

// DashboardStats is the channel-level statistics response. Every field is
// computed independently; a failed sub-metric fails the whole request rather
// than surfacing as a silent zero.
type DashboardStats struct {
	TotalVideos       int64 `json:"totalVideos"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalVideoLikes   int64 `json:"totalVideoLikes"`
	TotalTweetLikes   int64 `json:"totalTweetLikes"`
	TotalCommentLikes int64 `json:"totalCommentLikes"`
	TotalViews        int64 `json:"totalViews"`
}
