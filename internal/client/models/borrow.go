package models

import "time"

// BorrowStatus tracks a borrow request through its lifecycle.
type BorrowStatus string

const (
	BorrowPending  BorrowStatus = "PENDING"
	BorrowApproved BorrowStatus = "APPROVED"
	BorrowRejected BorrowStatus = "REJECTED"
	BorrowActive   BorrowStatus = "BORROWED"
	BorrowReturned BorrowStatus = "RETURNED"
)

// BorrowRecord describes one borrow request and its progress. Nickname and
// tool name fields are denormalized by the server for display.
type BorrowRecord struct {
	ID               int64        `json:"id"`
	ToolID           int64        `json:"toolId"`
	BorrowerID       int64        `json:"borrowerId"`
	OwnerID          int64        `json:"ownerId"`
	Status           BorrowStatus `json:"status"`
	ApplyTime        *time.Time   `json:"applyTime,omitempty"`
	ApproveTime      *time.Time   `json:"approveTime,omitempty"`
	PickupTime       *time.Time   `json:"pickupTime,omitempty"`
	ReturnTime       *time.Time   `json:"returnTime,omitempty"`
	Remark           string       `json:"remark,omitempty"`
	ToolName         string       `json:"toolName,omitempty"`
	BorrowerNickname string       `json:"borrowerNickname,omitempty"`
	OwnerNickname    string       `json:"ownerNickname,omitempty"`
}
