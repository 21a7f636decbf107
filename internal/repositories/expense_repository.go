package repositories

import "spendtrack/internal/models"

// ExpenseRepository defines the interface for expense data access. Every
// mutation appends its audit row inside the same transaction as the primary
// write; a failed append is logged and tolerated, never rolled back into the
// mutation. Lookups and mutations are scoped by both expense id and owner id,
// so a miss and a foreign row are indistinguishable.
type ExpenseRepository interface {
	Create(expense *models.Expense) error
	Update(expense *models.Expense) error
	SoftDelete(id, userID uint) error
	GetActive(id, userID uint) (*models.Expense, error)
	ListActive(userID uint) ([]models.Expense, error)
}
