package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raylin-wellness/feed-sdk/models"
)

// ListCommunityGroups 拉取全部社区圈子
func (c *Client) ListCommunityGroups(ctx context.Context) ([]models.CommunityGroup, error) {
	var out []models.CommunityGroup
	if err := c.do(ctx, http.MethodGet, "/community-groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCommunityGroup 拉取单个圈子
func (c *Client) GetCommunityGroup(ctx context.Context, id uint64) (*models.CommunityGroup, error) {
	var out models.CommunityGroup
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/community-groups/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinCommunityGroup 加入圈子
func (c *Client) JoinCommunityGroup(ctx context.Context, groupID, userID uint64) error {
	body := map[string]uint64{"userId": userID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/community-groups/%d/join", groupID), body, nil)
}

// ListJoinedCommunities 拉取用户已加入的圈子
func (c *Client) ListJoinedCommunities(ctx context.Context, userID uint64) ([]models.CommunityGroup, error) {
	var out []models.CommunityGroup
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/community-groups/joined?userId=%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
