package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	grocy "github.com/grocyhq/go-grocy"
)

// choresCmd represents the chores command
var choresCmd = &cobra.Command{
	Use:   "chores",
	Short: "List chores and their next execution times",
	RunE:  runChores,
}

func init() {
	choresCmd.Flags().BoolVar(&withDetails, "details", false, "fetch full details for every chore (one extra request each)")
}

func runChores(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	chores, err := client.Chores().List(ctx, grocy.ListOptions{Details: withDetails})
	if err != nil {
		return fmt.Errorf("failed to get chores: %w", err)
	}

	if len(chores) == 0 {
		fmt.Println("No chores found.")
		return nil
	}

	fmt.Printf("\n%d chores:\n", len(chores))
	fmt.Println(strings.Repeat("-", 60))
	for _, c := range chores {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("chore #%d", c.ID)
		}
		fmt.Printf("• %s", name)
		if c.NextEstimatedExecutionTime != nil {
			fmt.Printf("  next %s", c.NextEstimatedExecutionTime.Format("2006-01-02"))
		}
		if c.NextExecutionAssignedUser != nil {
			fmt.Printf("  assigned to %s", c.NextExecutionAssignedUser.DisplayName)
		}
		fmt.Println()
	}

	return nil
}
