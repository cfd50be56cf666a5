package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	grocy "github.com/grocyhq/go-grocy"
	"github.com/grocyhq/go-grocy/filter"
)

// stockCmd represents the stock command
var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "List products currently in stock",
	Long: `List all products currently in stock, optionally narrowed by a filter
expression evaluated client-side against each product.`,
	RunE: runStock,
}

func init() {
	stockCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'Item.AvailableAmount < 2'")
	stockCmd.Flags().BoolVar(&withDetails, "details", false, "fetch full details for every product (one extra request each)")
}

func runStock(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	products, err := client.Stock().Current(ctx, grocy.ListOptions{Details: withDetails})
	if err != nil {
		return fmt.Errorf("failed to get stock: %w", err)
	}

	if filterExpr != "" {
		f, err := resolveFilter(filterExpr)
		if err != nil {
			return err
		}
		products, err = filter.Apply(f, products)
		if err != nil {
			return err
		}
	}

	if len(products) == 0 {
		fmt.Println("No products in stock.")
		return nil
	}

	fmt.Printf("\n%d products in stock:\n", len(products))
	fmt.Println(strings.Repeat("-", 60))
	for _, p := range products {
		fmt.Printf("• %s: %.2f", p.Name, p.AvailableAmount)
		if p.AmountOpened > 0 {
			fmt.Printf(" (%.2f opened)", p.AmountOpened)
		}
		if !p.BestBeforeDate.IsZero() {
			fmt.Printf("  due %s", p.BestBeforeDate.Format("2006-01-02"))
		}
		fmt.Println()
	}

	return nil
}

// resolveFilter compiles either a named filter from config or a literal
// expression.
func resolveFilter(expression string) (*filter.Filter, error) {
	if named, ok := cfg.Filter[expression]; ok {
		expression = named
	}
	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}
