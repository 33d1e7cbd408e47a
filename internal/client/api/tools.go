package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/asemenova/toolshare/internal/client/models"
)

// ToolQuery filters the public catalog listing.
type ToolQuery struct {
	Keyword  string
	Category string
}

func (q ToolQuery) values() url.Values {
	v := url.Values{}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

// ToolRequest is the create/update body for a listing.
type ToolRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	Images        string `json:"images,omitempty"`
	ToolCondition string `json:"toolCondition,omitempty"`
	Location      string `json:"location,omitempty"`
}

// ListTools browses the public catalog.
func (c *Client) ListTools(ctx context.Context, q ToolQuery) ([]models.Tool, error) {
	var tools []models.Tool
	if _, err := c.get(ctx, "/tools", q.values(), &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// GetTool fetches one listing.
func (c *Client) GetTool(ctx context.Context, id int64) (*models.Tool, error) {
	var tool models.Tool
	if _, err := c.get(ctx, "/tools/"+strconv.FormatInt(id, 10), nil, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

// PublishTool creates a listing; it enters the audit queue server-side.
func (c *Client) PublishTool(ctx context.Context, req ToolRequest) (*models.Tool, error) {
	var tool models.Tool
	if _, err := c.post(ctx, "/tools", req, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

// UpdateTool edits one of the caller's listings.
func (c *Client) UpdateTool(ctx context.Context, id int64, req ToolRequest) error {
	_, err := c.put(ctx, fmt.Sprintf("/tools/%d", id), req, nil)
	return err
}

// DeleteTool removes one of the caller's listings.
func (c *Client) DeleteTool(ctx context.Context, id int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/tools/%d", id))
	return err
}

// MyTools lists the caller's own listings, any status.
func (c *Client) MyTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	if _, err := c.get(ctx, "/tools/my", nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}
