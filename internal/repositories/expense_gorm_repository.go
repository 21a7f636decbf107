package repositories

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spendtrack/internal/models"
)

// GORMExpenseRepository is a GORM implementation of ExpenseRepository.
type GORMExpenseRepository struct {
	db *gorm.DB
}

// NewGORMExpenseRepository creates a new instance of GORMExpenseRepository.
func NewGORMExpenseRepository(db *gorm.DB) *GORMExpenseRepository {
	return &GORMExpenseRepository{
		db: db,
	}
}

// logHistory appends an audit row for an expense mutation. Failures are logged
// and swallowed so the audit trail can never abort the mutation it records.
func logHistory(tx *gorm.DB, userID, expenseID uint, action string, amount float64) {
	entry := &models.ExpenseHistory{
		UserID:    userID,
		ExpenseID: expenseID,
		Action:    action,
		Amount:    amount,
	}
	if err := tx.Omit(clause.Associations).Create(entry).Error; err != nil {
		log.Printf("Failed to log expense history (expense %d, action %s): %v", expenseID, action, err)
	}
}

// Create inserts a new expense and its CREATE audit row in one transaction.
func (r *GORMExpenseRepository) Create(expense *models.Expense) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(expense).Error; err != nil {
			return err
		}
		logHistory(tx, expense.UserID, expense.ID, models.ActionCreate, expense.Amount)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an active expense owned by
// expense.UserID and appends an UPDATE audit row carrying the new amount.
// Returns ErrNotFound when no matching active row exists.
func (r *GORMExpenseRepository) Update(expense *models.Expense) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Expense{}).
			Where("id = ? AND user_id = ? AND is_active = ?", expense.ID, expense.UserID, true).
			Updates(map[string]interface{}{
				"name":       expense.Name,
				"amount":     expense.Amount,
				"category":   expense.Category,
				"recurring":  expense.Recurring,
				"schedule":   expense.Schedule,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		logHistory(tx, expense.UserID, expense.ID, models.ActionUpdate, expense.Amount)
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", expense.ID, err)
	}
	return nil
}

// SoftDelete deactivates an active expense owned by userID and appends a
// DELETE audit row carrying the pre-delete amount. Returns ErrNotFound when no
// matching active row exists.
func (r *GORMExpenseRepository) SoftDelete(id, userID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.First(&expense, "id = ? AND user_id = ? AND is_active = ?", id, userID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		res := tx.Model(&models.Expense{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"is_active":  false,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		logHistory(tx, userID, id, models.ActionDelete, expense.Amount)
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to remove expense %d: %w", id, err)
	}
	return nil
}

// GetActive retrieves an active expense scoped by id and owner.
func (r *GORMExpenseRepository) GetActive(id, userID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, "id = ? AND user_id = ? AND is_active = ?", id, userID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense %d: %w", id, err)
	}
	return &expense, nil
}

// ListActive returns all active expenses owned by userID, most recent first.
func (r *GORMExpenseRepository) ListActive(userID uint) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses for user %d: %w", userID, err)
	}
	return expenses, nil
}
