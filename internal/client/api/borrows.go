package api

import (
	"context"
	"fmt"

	"github.com/asemenova/toolshare/internal/client/models"
)

// BorrowApplication asks to borrow a tool.
type BorrowApplication struct {
	ToolID int64  `json:"toolId"`
	Remark string `json:"remark,omitempty"`
}

// ApplyBorrow files a borrow request; the owner approves or rejects it.
func (c *Client) ApplyBorrow(ctx context.Context, app BorrowApplication) (*models.BorrowRecord, error) {
	var rec models.BorrowRecord
	if _, err := c.post(ctx, "/borrows", app, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// MyBorrows lists requests the caller filed as a borrower.
func (c *Client) MyBorrows(ctx context.Context) ([]models.BorrowRecord, error) {
	var recs []models.BorrowRecord
	if _, err := c.get(ctx, "/borrows/my", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// ReceivedBorrows lists requests filed against the caller's tools.
func (c *Client) ReceivedBorrows(ctx context.Context) ([]models.BorrowRecord, error) {
	var recs []models.BorrowRecord
	if _, err := c.get(ctx, "/borrows/received", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *Client) borrowTransition(ctx context.Context, id int64, action string) error {
	_, err := c.put(ctx, fmt.Sprintf("/borrows/%d/%s", id, action), nil, nil)
	return err
}

// ApproveBorrow lets the owner grant a pending request.
func (c *Client) ApproveBorrow(ctx context.Context, id int64) error {
	return c.borrowTransition(ctx, id, "approve")
}

// RejectBorrow lets the owner decline a pending request.
func (c *Client) RejectBorrow(ctx context.Context, id int64) error {
	return c.borrowTransition(ctx, id, "reject")
}

// PickupBorrow marks an approved request as picked up.
func (c *Client) PickupBorrow(ctx context.Context, id int64) error {
	return c.borrowTransition(ctx, id, "pickup")
}

// ReturnBorrow marks a borrowed tool as returned.
func (c *Client) ReturnBorrow(ctx context.Context, id int64) error {
	return c.borrowTransition(ctx, id, "return")
}
