package store

import "github.com/julianstephens/tempo/internal/models"

type PaymentInput struct {
	ProjectID   string
	Amount      float64
	Currency    string
	Date        string
	Description string
	DocumentURL string
}

func (s *Store) AddPayment(input PaymentInput) (models.Payment, error) {
	payment := models.Payment{
		ID:          s.newID(),
		ProjectID:   input.ProjectID,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Date:        input.Date,
		Description: input.Description,
		DocumentURL: input.DocumentURL,
		CreatedAt:   s.timestamp(),
	}

	if err := s.provider.AddPayment(payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

type PaymentPatch struct {
	ProjectID   *string
	Amount      *float64
	Currency    *string
	Date        *string
	Description *string
	DocumentURL *string
}

func (s *Store) UpdatePayment(id string, patch PaymentPatch) error {
	payment, err := s.provider.GetPayment(id)
	if err != nil {
		return nil
	}

	if patch.ProjectID != nil {
		payment.ProjectID = *patch.ProjectID
	}
	if patch.Amount != nil {
		payment.Amount = *patch.Amount
	}
	if patch.Currency != nil {
		payment.Currency = *patch.Currency
	}
	if patch.Date != nil {
		payment.Date = *patch.Date
	}
	if patch.Description != nil {
		payment.Description = *patch.Description
	}
	if patch.DocumentURL != nil {
		payment.DocumentURL = *patch.DocumentURL
	}

	return s.provider.UpdatePayment(payment)
}

func (s *Store) DeletePayment(id string) error {
	if _, err := s.provider.GetPayment(id); err != nil {
		return nil
	}
	return s.provider.DeletePayment(id)
}

func (s *Store) Payments() ([]models.Payment, error) {
	return s.provider.GetAllPayments()
}

type ExpenseInput struct {
	ProjectID   string
	Amount      float64
	Currency    string
	Date        string
	Category    string
	Description string
	DocumentURL string
}

func (s *Store) AddExpense(input ExpenseInput) (models.Expense, error) {
	expense := models.Expense{
		ID:          s.newID(),
		ProjectID:   input.ProjectID,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Date:        input.Date,
		Category:    input.Category,
		Description: input.Description,
		DocumentURL: input.DocumentURL,
		CreatedAt:   s.timestamp(),
	}

	if err := s.provider.AddExpense(expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

type ExpensePatch struct {
	ProjectID   *string
	Amount      *float64
	Currency    *string
	Date        *string
	Category    *string
	Description *string
	DocumentURL *string
}

func (s *Store) UpdateExpense(id string, patch ExpensePatch) error {
	expense, err := s.provider.GetExpense(id)
	if err != nil {
		return nil
	}

	if patch.ProjectID != nil {
		expense.ProjectID = *patch.ProjectID
	}
	if patch.Amount != nil {
		expense.Amount = *patch.Amount
	}
	if patch.Currency != nil {
		expense.Currency = *patch.Currency
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.Category != nil {
		expense.Category = *patch.Category
	}
	if patch.Description != nil {
		expense.Description = *patch.Description
	}
	if patch.DocumentURL != nil {
		expense.DocumentURL = *patch.DocumentURL
	}

	return s.provider.UpdateExpense(expense)
}

func (s *Store) DeleteExpense(id string) error {
	if _, err := s.provider.GetExpense(id); err != nil {
		return nil
	}
	return s.provider.DeleteExpense(id)
}

func (s *Store) Expenses() ([]models.Expense, error) {
	return s.provider.GetAllExpenses()
}
