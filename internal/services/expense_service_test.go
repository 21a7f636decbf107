package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/errs"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"
)

// MockExpenseRepository is a mock implementation of repositories.ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(expense *models.Expense) error {
	args := m.Called(expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(expense *models.Expense) error {
	args := m.Called(expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) SoftDelete(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetActive(id, userID uint) (*models.Expense, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListActive(userID uint) ([]models.Expense, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func testSession() *models.Session {
	return &models.Session{Token: "tok", UserID: 7, Username: "alice"}
}

func TestExpenseService_RequiresSession(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	var aerr *errs.AuthError

	_, err := service.Add(nil, "Coffee", "4.50", "Food", false, "")
	assert.ErrorAs(t, err, &aerr)

	_, err = service.List(nil)
	assert.ErrorAs(t, err, &aerr)

	err = service.Remove(nil, 1)
	assert.ErrorAs(t, err, &aerr)

	err = service.Update(nil, 1, "Coffee", "4.50", "Food", false, "")
	assert.ErrorAs(t, err, &aerr)

	// A cleared session is as good as no session.
	_, err = service.List(&models.Session{})
	assert.ErrorAs(t, err, &aerr)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertNotCalled(t, "ListActive", mock.Anything)
}

func TestExpenseService_Add(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(e *models.Expense) bool {
		return e.UserID == 7 &&
			e.Name == "Coffee" &&
			e.Amount == 4.50 &&
			e.Category == "Food" &&
			!e.Recurring &&
			e.Schedule == nil &&
			e.IsActive
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Expense).ID = 42
	}).Return(nil).Once()

	id, err := service.Add(testSession(), "Coffee", "4.50", "Food", false, "")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_AddNormalizesOptionalFields(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(e *models.Expense) bool {
		return e.Category == "General" &&
			e.Recurring &&
			e.Schedule != nil && *e.Schedule == "monthly"
	})).Return(nil).Once()

	_, err := service.Add(testSession(), "Rent", 850, "", true, "  MONTHLY ")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_AddInvalidInput(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	var verr *errs.ValidationError

	_, err := service.Add(testSession(), "", "4.50", "Food", false, "")
	assert.ErrorAs(t, err, &verr)

	_, err = service.Add(testSession(), "Coffee", "-1", "Food", false, "")
	assert.ErrorAs(t, err, &verr)

	_, err = service.Add(testSession(), "Coffee", "not-a-number", "Food", false, "")
	assert.ErrorAs(t, err, &verr)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestExpenseService_Update(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("Update", mock.MatchedBy(func(e *models.Expense) bool {
		return e.ID == 42 && e.UserID == 7 && e.Name == "Lunch" && e.Amount == 12.00
	})).Return(nil).Once()

	err := service.Update(testSession(), 42, "Lunch", "12.00", "Food", false, "")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_UpdateNotFound(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("Update", mock.AnythingOfType("*models.Expense")).Return(repositories.ErrNotFound).Once()

	err := service.Update(testSession(), 99, "Lunch", "12.00", "Food", false, "")
	var verr *errs.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "not found or access denied")
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_Remove(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("SoftDelete", uint(42), uint(7)).Return(nil).Once()
	assert.NoError(t, service.Remove(testSession(), 42))
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_RemoveNotFound(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("SoftDelete", uint(99), uint(7)).Return(repositories.ErrNotFound).Once()

	err := service.Remove(testSession(), 99)
	var verr *errs.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "not found or access denied")
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_List(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	expected := []models.Expense{
		{ID: 2, UserID: 7, Name: "Lunch", Amount: 12.00},
		{ID: 1, UserID: 7, Name: "Coffee", Amount: 4.50},
	}
	mockRepo.On("ListActive", uint(7)).Return(expected, nil).Once()

	expenses, err := service.List(testSession())
	require.NoError(t, err)
	assert.Equal(t, expected, expenses)
	mockRepo.AssertExpectations(t)
}

func TestExpenseService_ListEmpty(t *testing.T) {
	mockRepo := new(MockExpenseRepository)
	service := services.NewExpenseService(mockRepo)

	mockRepo.On("ListActive", uint(7)).Return([]models.Expense{}, nil).Once()

	expenses, err := service.List(testSession())
	require.NoError(t, err)
	assert.Empty(t, expenses)
	mockRepo.AssertExpectations(t)
}
