package models

import "time"

// PointRecord is a single entry in a user's points ledger.
type PointRecord struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Points      int        `json:"points"`
	Type        string     `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	CreateTime  *time.Time `json:"createTime,omitempty"`
}
