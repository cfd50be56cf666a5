package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and server version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().StringVar(&minVersion, "min", "", "fail unless the server runs at least this version")
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("grocy CLI %s (built %s)\n", version, buildTime)

	ctx := context.Background()
	info, err := client.System().Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server info: %w", err)
	}
	if info == nil {
		return fmt.Errorf("server returned no version information")
	}

	fmt.Printf("Server: Grocy %s (PHP %s, SQLite %s)\n",
		info.GrocyVersion.Version, info.PHPVersion, info.SQLiteVersion)

	if minVersion != "" {
		ok, err := client.System().VersionAtLeast(ctx, minVersion)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("server version %s is below required %s", info.GrocyVersion.Version, minVersion)
		}
		fmt.Printf("✓ Server meets minimum version %s\n", minVersion)
	}

	return nil
}
