package finance

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type ExpenseAddCmd struct {
	Project     string  `arg:"" help:"Project ID."`
	Amount      float64 `arg:"" help:"Amount spent."`
	Currency    string  `short:"c" help:"Currency code." default:"EUR"`
	Date        string  `short:"d" help:"Expense date (YYYY-MM-DD)."`
	Category    string  `help:"Expense category (hosting, tooling, ...)."`
	Description string  `help:"Description."`
	Document    string  `help:"URL of the invoice or receipt."`
}

func (c *ExpenseAddCmd) Validate() error {
	if err := validation.ValidateAmount(c.Amount); err != nil {
		return err
	}
	if err := validation.ValidateCurrency(c.Currency); err != nil {
		return err
	}
	if err := validation.ValidateDate(c.Date); err != nil {
		return err
	}
	return validation.ValidateURL(c.Document)
}

func (c *ExpenseAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Project(c.Project); err != nil {
		return fmt.Errorf("unknown project: %s", c.Project)
	}

	expense, err := ctx.Store.AddExpense(store.ExpenseInput{
		ProjectID:   c.Project,
		Amount:      c.Amount,
		Currency:    c.Currency,
		Date:        c.Date,
		Category:    c.Category,
		Description: c.Description,
		DocumentURL: c.Document,
	})
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	fmt.Printf("Recorded expense of %.2f %s (ID: %s)\n", expense.Amount, expense.Currency, expense.ID)
	return nil
}

type ExpenseListCmd struct {
	Project string `short:"P" help:"Only expenses of this project."`
}

func (c *ExpenseListCmd) Run(ctx *cli.Context) error {
	expenses, err := ctx.Store.Expenses()
	if err != nil {
		return fmt.Errorf("failed to get expenses: %w", err)
	}

	shown := 0
	for _, e := range expenses {
		if c.Project != "" && e.ProjectID != c.Project {
			continue
		}
		if shown == 0 {
			fmt.Println(cli.TitleStyle.Render("Expenses:"))
		}
		shown++

		line := fmt.Sprintf("  [%s] %.2f %s", cli.ShortID(e.ID), e.Amount, e.Currency)
		if e.Category != "" {
			line += " (" + e.Category + ")"
		}
		if e.Date != "" {
			line += " on " + e.Date
		}
		if e.Description != "" {
			line += "  " + cli.MutedStyle.Render(e.Description)
		}
		fmt.Println(line)
	}

	if shown == 0 {
		fmt.Println("No expenses found")
	}
	return nil
}

type ExpenseDeleteCmd struct {
	ID string `arg:"" help:"Expense ID."`
}

func (c *ExpenseDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteExpense(c.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	fmt.Printf("Deleted expense %s\n", c.ID)
	return nil
}
