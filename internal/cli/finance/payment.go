package finance

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type PaymentAddCmd struct {
	Project     string  `arg:"" help:"Project ID."`
	Amount      float64 `arg:"" help:"Amount received."`
	Currency    string  `short:"c" help:"Currency code." default:"EUR"`
	Date        string  `short:"d" help:"Payment date (YYYY-MM-DD)."`
	Description string  `help:"Description."`
	Document    string  `help:"URL of the invoice or receipt."`
}

func (c *PaymentAddCmd) Validate() error {
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

func (c *PaymentAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Project(c.Project); err != nil {
		return fmt.Errorf("unknown project: %s", c.Project)
	}

	payment, err := ctx.Store.AddPayment(store.PaymentInput{
		ProjectID:   c.Project,
		Amount:      c.Amount,
		Currency:    c.Currency,
		Date:        c.Date,
		Description: c.Description,
		DocumentURL: c.Document,
	})
	if err != nil {
		return fmt.Errorf("failed to add payment: %w", err)
	}

	fmt.Printf("Recorded payment of %.2f %s (ID: %s)\n", payment.Amount, payment.Currency, payment.ID)
	return nil
}

type PaymentListCmd struct {
	Project string `short:"P" help:"Only payments of this project."`
}

func (c *PaymentListCmd) Run(ctx *cli.Context) error {
	payments, err := ctx.Store.Payments()
	if err != nil {
		return fmt.Errorf("failed to get payments: %w", err)
	}

	shown := 0
	for _, p := range payments {
		if c.Project != "" && p.ProjectID != c.Project {
			continue
		}
		if shown == 0 {
			fmt.Println(cli.TitleStyle.Render("Payments:"))
		}
		shown++

		line := fmt.Sprintf("  [%s] %.2f %s", cli.ShortID(p.ID), p.Amount, p.Currency)
		if p.Date != "" {
			line += " on " + p.Date
		}
		if p.Description != "" {
			line += "  " + cli.MutedStyle.Render(p.Description)
		}
		fmt.Println(line)
	}

	if shown == 0 {
		fmt.Println("No payments found")
	}
	return nil
}

type PaymentDeleteCmd struct {
	ID string `arg:"" help:"Payment ID."`
}

func (c *PaymentDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeletePayment(c.ID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	fmt.Printf("Deleted payment %s\n", c.ID)
	return nil
}
