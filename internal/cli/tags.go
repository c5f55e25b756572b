package cli

import "fmt"

type TagsCmd struct{}

// Run lists every tag used by tasks and notes.
func (c *TagsCmd) Run(ctx *Context) error {
	tags, err := ctx.Store.AllTags()
	if err != nil {
		return fmt.Errorf("failed to collect tags: %w", err)
	}
	if len(tags) == 0 {
		fmt.Println("No tags in use")
		return nil
	}

	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

type CategoriesCmd struct{}

// Run lists every project category in use.
func (c *CategoriesCmd) Run(ctx *Context) error {
	categories, err := ctx.Store.Categories()
	if err != nil {
		return fmt.Errorf("failed to collect categories: %w", err)
	}
	if len(categories) == 0 {
		fmt.Println("No categories in use")
		return nil
	}

	for _, category := range categories {
		fmt.Println(category)
	}
	return nil
}
