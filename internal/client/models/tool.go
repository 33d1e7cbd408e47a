package models

import "time"

// ToolStatus tracks a listing through audit and lending.
type ToolStatus string

const (
	ToolPendingReview ToolStatus = "PENDING_REVIEW"
	ToolApproved      ToolStatus = "APPROVED"
	ToolRejected      ToolStatus = "REJECTED"
	ToolAvailable     ToolStatus = "AVAILABLE"
	ToolBorrowed      ToolStatus = "BORROWED"
	ToolOffline       ToolStatus = "OFFLINE"
)

// Tool is a shareable item listed in the catalog.
type Tool struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category,omitempty"`
	Images        string     `json:"images,omitempty"`
	Status        ToolStatus `json:"status"`
	ToolCondition string     `json:"toolCondition,omitempty"`
	Location      string     `json:"location,omitempty"`
	OwnerNickname string     `json:"ownerNickname,omitempty"`
	CreateTime    *time.Time `json:"createTime,omitempty"`
	UpdateTime    *time.Time `json:"updateTime,omitempty"`
}
