// Command ordermanager runs the order-management API and its maintenance
// tasks.
//
//	ordermanager serve
//	ordermanager migrate
//	ordermanager seed
//	ordermanager route:list
//	ordermanager orders:export --path exports/orders.json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/shashiranjanraj/ordermanager/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "ordermanager",
	Short:         "Order management REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(exportCmd)
}
