package api

import (
	"context"
	"fmt"

	"github.com/asemenova/toolshare/internal/client/models"
)

// ReviewRequest is the create body for a review.
type ReviewRequest struct {
	BorrowRecordID int64  `json:"borrowRecordId"`
	Rating         int    `json:"rating"`
	Content        string `json:"content,omitempty"`
}

// CreateReview posts feedback for a completed borrow.
func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (*models.Review, error) {
	var review models.Review
	if _, err := c.post(ctx, "/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// ToolReviews lists reviews left on a tool.
func (c *Client) ToolReviews(ctx context.Context, toolID int64) ([]models.Review, error) {
	var reviews []models.Review
	if _, err := c.get(ctx, fmt.Sprintf("/reviews/tool/%d", toolID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// MyReviews lists reviews written by the caller.
func (c *Client) MyReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if _, err := c.get(ctx, "/reviews/my", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
