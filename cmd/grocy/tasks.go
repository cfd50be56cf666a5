package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	grocy "github.com/grocyhq/go-grocy"
)

// tasksCmd represents the tasks command
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List open tasks",
	RunE:  runTasks,
}

func runTasks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tasks, err := client.Tasks().List(ctx, grocy.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	open := make([]*grocy.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Done {
			open = append(open, t)
		}
	}

	if len(open) == 0 {
		fmt.Println("No open tasks.")
		return nil
	}

	fmt.Printf("\n%d open tasks:\n", len(open))
	fmt.Println(strings.Repeat("-", 60))
	for _, t := range open {
		fmt.Printf("• %s", t.Name)
		if t.DueDate != nil {
			fmt.Printf("  due %s", t.DueDate.Format("2006-01-02"))
		}
		if t.Category != nil {
			fmt.Printf("  [%s]", t.Category.Name)
		}
		fmt.Println()
	}

	return nil
}
