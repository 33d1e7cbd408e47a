package api

import (
	"context"
	"fmt"

	"github.com/asemenova/toolshare/internal/client/models"
)

// Notifications lists the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var items []models.Notification
	if _, err := c.get(ctx, "/notifications", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UnreadCount returns how many notifications are unread.
func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	if _, err := c.get(ctx, "/notifications/unread-count", nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	_, err := c.put(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
	return err
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.put(ctx, "/notifications/read-all", nil, nil)
	return err
}
