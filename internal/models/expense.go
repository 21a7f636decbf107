package models

import "time"

// Expense represents a single expense record owned by one user. Deletion is a
// soft delete (IsActive flips to false) so the row remains available to the
// audit trail.
type Expense struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Amount    float64   `json:"amount" gorm:"not null;check:chk_expenses_amount,amount > 0" validate:"required,gt=0"`
	Category  string    `json:"category" gorm:"type:varchar(50);not null;default:General"`
	Recurring bool      `json:"recurring" gorm:"not null;default:false"`
	Schedule  *string   `json:"schedule,omitempty" gorm:"type:varchar(10)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"-" gorm:"not null;default:true;index"`
}

// Audit actions recorded in ExpenseHistory.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ExpenseHistory is an append-only audit row, written once per expense
// mutation and never updated or removed. The owning user id is denormalized
// onto the row for audit convenience.
type ExpenseHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ExpenseID uint      `json:"expense_id" gorm:"not null;index"`
	Expense   Expense   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Action    string    `json:"action" gorm:"type:varchar(10);not null;check:chk_expense_history_action,action IN ('CREATE','UPDATE','DELETE')"`
	Amount    float64   `json:"amount" gorm:"not null;check:chk_expense_history_amount,amount > 0"`
	CreatedAt time.Time `json:"created_at"`
}
