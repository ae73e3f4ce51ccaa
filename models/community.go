package models

// CommunityGroup 社区圈子
type CommunityGroup struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	JoinedUsersCount int    `json:"joinedUsersCount"`
	ImageURL         string `json:"image_url,omitempty"`
}
