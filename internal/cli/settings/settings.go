package settings

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/constants"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.Settings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render("Settings:"))
	fmt.Printf("  default-view:  %s\n", settings.DefaultView)
	fmt.Printf("  theme:         %s\n", settings.Theme)
	fmt.Printf("  notifications: %t\n", settings.Notifications)
	fmt.Printf("  week-start:    %s\n", settings.WeekStart)
	fmt.Printf("  day-start:     %s\n", settings.DayStart)
	fmt.Printf("  day-end:       %s\n", settings.DayEnd)
	return nil
}

type SetCmd struct {
	DefaultView   *string `help:"Default view (board|calendar|list)." name:"default-view"`
	Theme         *string `help:"Color theme (dark|light)."`
	Notifications *bool   `help:"Enable or disable notifications."`
	WeekStart     *string `help:"First day of the week (monday|sunday)." name:"week-start"`
	DayStart      *string `help:"First visible hour of the day grid (HH:MM)." name:"day-start"`
	DayEnd        *string `help:"Last visible hour of the day grid (HH:MM)." name:"day-end"`
}

func (c *SetCmd) Validate() error {
	if c.DefaultView != nil && !oneOf(*c.DefaultView, constants.Views) {
		return fmt.Errorf("invalid view %q (expected board|calendar|list)", *c.DefaultView)
	}
	if c.Theme != nil && !oneOf(*c.Theme, constants.Themes) {
		return fmt.Errorf("invalid theme %q (expected dark|light)", *c.Theme)
	}
	if c.WeekStart != nil && !oneOf(*c.WeekStart, constants.WeekStarts) {
		return fmt.Errorf("invalid week start %q (expected monday|sunday)", *c.WeekStart)
	}
	if c.DayStart != nil {
		if err := validation.ValidateTime(*c.DayStart); err != nil {
			return err
		}
	}
	if c.DayEnd != nil {
		if err := validation.ValidateTime(*c.DayEnd); err != nil {
			return err
		}
	}
	return nil
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if c.DefaultView == nil && c.Theme == nil && c.Notifications == nil &&
		c.WeekStart == nil && c.DayStart == nil && c.DayEnd == nil {
		return fmt.Errorf("nothing to set, see 'tempo settings set --help'")
	}

	_, err := ctx.Store.UpdateSettings(store.SettingsPatch{
		DefaultView:   c.DefaultView,
		Theme:         c.Theme,
		Notifications: c.Notifications,
		WeekStart:     c.WeekStart,
		DayStart:      c.DayStart,
		DayEnd:        c.DayEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	fmt.Println("Settings updated")
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
