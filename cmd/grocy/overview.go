package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	grocy "github.com/grocyhq/go-grocy"
)

// overviewCmd represents the overview command
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show a combined household overview",
	Long: `Show stock warnings, chores, tasks and batteries in one view. The four
surfaces are fetched in parallel.`,
	RunE: runOverview,
}

func runOverview(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var (
		volatile  *grocy.Volatile
		chores    []*grocy.Chore
		tasks     []*grocy.Task
		batteries []*grocy.Battery
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		volatile, err = client.Stock().Volatile(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		chores, err = client.Chores().List(ctx, grocy.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = client.Tasks().List(ctx, grocy.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		batteries, err = client.Batteries().List(ctx, grocy.ListOptions{})
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load overview: %w", err)
	}

	openTasks := 0
	for _, t := range tasks {
		if !t.Done {
			openTasks++
		}
	}

	fmt.Println("\nHousehold overview:")
	if volatile != nil {
		fmt.Printf("- Stock: %d due, %d overdue, %d expired, %d missing\n",
			len(volatile.Due), len(volatile.Overdue), len(volatile.Expired), len(volatile.Missing))
	}
	fmt.Printf("- Chores: %d tracked\n", len(chores))
	fmt.Printf("- Tasks: %d open\n", openTasks)
	fmt.Printf("- Batteries: %d tracked\n", len(batteries))

	return nil
}
