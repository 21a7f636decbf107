package services

import (
	"errors"
	"log"

	"spendtrack/internal/errs"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/validation"
)

// ExpenseService is the expense ledger: create, read, update, and soft-delete
// of expense records with an audit trail, always scoped to the authenticated
// session passed to each operation.
type ExpenseService struct {
	expenses repositories.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenses repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
	}
}

func (s *ExpenseService) requireSession(session *models.Session) (uint, error) {
	if session == nil || session.UserID == 0 {
		return 0, errs.Auth("not authenticated")
	}
	return session.UserID, nil
}

// Add records a new expense for the session's user and returns its id. The
// amount may be a number or a numeric string.
func (s *ExpenseService) Add(session *models.Session, name string, amount any, category string, recurring bool, schedule string) (uint, error) {
	userID, err := s.requireSession(session)
	if err != nil {
		return 0, err
	}

	name, err = validation.ExpenseName(validation.Sanitize(name))
	if err != nil {
		return 0, err
	}
	value, err := validation.Amount(amount)
	if err != nil {
		return 0, err
	}

	expense := &models.Expense{
		UserID:    userID,
		Name:      name,
		Amount:    value,
		Category:  validation.Category(validation.Sanitize(category)),
		Recurring: recurring,
		IsActive:  true,
	}
	if sched := validation.Schedule(validation.Sanitize(schedule)); sched != "" {
		expense.Schedule = &sched
	}

	if err := s.expenses.Create(expense); err != nil {
		return 0, errs.Storage("add expense", err)
	}

	log.Printf("Expense added: %s ($%.2f) for user %s", name, value, session.Username)
	return expense.ID, nil
}

// Update validates the new field values and overwrites an expense owned by the
// session's user. A missing or foreign expense id is reported as "not found or
// access denied" without revealing which.
func (s *ExpenseService) Update(session *models.Session, id uint, name string, amount any, category string, recurring bool, schedule string) error {
	userID, err := s.requireSession(session)
	if err != nil {
		return err
	}

	name, err = validation.ExpenseName(validation.Sanitize(name))
	if err != nil {
		return err
	}
	value, err := validation.Amount(amount)
	if err != nil {
		return err
	}

	expense := &models.Expense{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Amount:    value,
		Category:  validation.Category(validation.Sanitize(category)),
		Recurring: recurring,
	}
	if sched := validation.Schedule(validation.Sanitize(schedule)); sched != "" {
		expense.Schedule = &sched
	}

	if err := s.expenses.Update(expense); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errs.Validation("expense not found or access denied")
		}
		return errs.Storage("update expense", err)
	}

	log.Printf("Expense updated: ID %d for user %s", id, session.Username)
	return nil
}

// Remove soft-deletes an expense owned by the session's user.
func (s *ExpenseService) Remove(session *models.Session, id uint) error {
	userID, err := s.requireSession(session)
	if err != nil {
		return err
	}

	if err := s.expenses.SoftDelete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errs.Validation("expense not found or access denied")
		}
		return errs.Storage("remove expense", err)
	}

	log.Printf("Expense removed: ID %d for user %s", id, session.Username)
	return nil
}

// List returns the session's active expenses, most recent first. An account
// with no expenses gets an empty list, not an error.
func (s *ExpenseService) List(session *models.Session) ([]models.Expense, error) {
	userID, err := s.requireSession(session)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListActive(userID)
	if err != nil {
		return nil, errs.Storage("list expenses", err)
	}
	return expenses, nil
}
