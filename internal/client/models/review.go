package models

import "time"

// Review is feedback left by a borrower after returning a tool.
type Review struct {
	ID               int64      `json:"id"`
	BorrowRecordID   int64      `json:"borrowRecordId"`
	ReviewerID       int64      `json:"reviewerId"`
	ToolID           int64      `json:"toolId"`
	Rating           int        `json:"rating"`
	Content          string     `json:"content,omitempty"`
	CreateTime       *time.Time `json:"createTime,omitempty"`
	ReviewerNickname string     `json:"reviewerNickname,omitempty"`
}
