package api

import (
	"context"

	"github.com/asemenova/toolshare/internal/client/models"
)

// PublicAnnouncements lists currently published announcements.
func (c *Client) PublicAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var items []models.Announcement
	if _, err := c.get(ctx, "/announcements/public", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
