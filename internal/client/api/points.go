package api

import (
	"context"

	"github.com/asemenova/toolshare/internal/client/models"
)

// PointsRanking returns users ordered by points, best first.
func (c *Client) PointsRanking(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := c.get(ctx, "/points/ranking", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// MyPoints returns the caller's points ledger.
func (c *Client) MyPoints(ctx context.Context) ([]models.PointRecord, error) {
	var records []models.PointRecord
	if _, err := c.get(ctx, "/points/my", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
