package api

import (
	"context"
	"fmt"

	"github.com/asemenova/toolshare/internal/client/models"
)

// AuditRequest decides a pending listing. Action is "approve" or "reject";
// Reason is required for rejections.
type AuditRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// AnnouncementRequest is the create/update body for an announcement.
type AnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// Dashboard fetches the admin metrics summary.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if _, err := c.get(ctx, "/admin/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminUsers lists every registered user.
func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := c.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserStatus enables (1) or disables (0) an account.
func (c *Client) UpdateUserStatus(ctx context.Context, id int64, status int) error {
	body := map[string]int{"status": status}
	_, err := c.put(ctx, fmt.Sprintf("/admin/users/%d/status", id), body, nil)
	return err
}

// AdminTools lists every listing regardless of status.
func (c *Client) AdminTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	if _, err := c.get(ctx, "/admin/tools", nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// AuditTool approves or rejects a pending listing.
func (c *Client) AuditTool(ctx context.Context, id int64, req AuditRequest) error {
	_, err := c.put(ctx, fmt.Sprintf("/admin/tools/%d/audit", id), req, nil)
	return err
}

// OfflineTool forcibly removes a listing from the catalog.
func (c *Client) OfflineTool(ctx context.Context, id int64) error {
	_, err := c.put(ctx, fmt.Sprintf("/admin/tools/%d/offline", id), nil, nil)
	return err
}

// AdminAnnouncements lists all announcements including drafts.
func (c *Client) AdminAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var items []models.Announcement
	if _, err := c.get(ctx, "/admin/announcements", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateAnnouncement publishes a new announcement.
func (c *Client) CreateAnnouncement(ctx context.Context, req AnnouncementRequest) (*models.Announcement, error) {
	var item models.Announcement
	if _, err := c.post(ctx, "/admin/announcements", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateAnnouncement edits an announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, id int64, req AnnouncementRequest) error {
	_, err := c.put(ctx, fmt.Sprintf("/admin/announcements/%d", id), req, nil)
	return err
}

// DeleteAnnouncement removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, id int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/admin/announcements/%d", id))
	return err
}
