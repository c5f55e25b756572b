package finance

import (
	"fmt"
	"sort"

	"github.com/julianstephens/tempo/internal/cli"
)

type SummaryCmd struct {
	Project string `arg:"" help:"Project ID."`
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	project, err := ctx.Store.Project(c.Project)
	if err != nil {
		return fmt.Errorf("unknown project: %s", c.Project)
	}

	summary, err := ctx.Store.ProjectFinance(c.Project)
	if err != nil {
		return fmt.Errorf("failed to compute finance summary: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render("Finance summary for " + project.Name))
	if len(summary.Received) == 0 && len(summary.Spent) == 0 {
		fmt.Println("No payments or expenses recorded")
		return nil
	}

	currencies := make(map[string]struct{})
	for cur := range summary.Received {
		currencies[cur] = struct{}{}
	}
	for cur := range summary.Spent {
		currencies[cur] = struct{}{}
	}

	sorted := make([]string, 0, len(currencies))
	for cur := range currencies {
		sorted = append(sorted, cur)
	}
	sort.Strings(sorted)

	for _, cur := range sorted {
		received := summary.Received[cur]
		spent := summary.Spent[cur]
		fmt.Printf("%s: received %.2f, spent %.2f, net %.2f\n", cur, received, spent, received-spent)
	}
	return nil
}
