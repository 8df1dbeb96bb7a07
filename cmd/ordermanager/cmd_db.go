package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/ordermanager/database/seeders"
	"github.com/shashiranjanraj/ordermanager/pkg/app"
	"github.com/shashiranjanraj/ordermanager/pkg/migration"
)

// ordermanager migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.close()
		fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
		return migration.New(rt.db).WithOutput(cmd.OutOrStdout()).Run()
	},
}

// ordermanager migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.close()
		fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
		return migration.New(rt.db).WithOutput(cmd.OutOrStdout()).Rollback()
	},
}

// ordermanager migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.close()
		rows, err := migration.New(rt.db).Status()
		if err != nil {
			return err
		}
		return app.PrintMigrationStatus(cmd.OutOrStdout(), rows)
	},
}

// ordermanager seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the ADMIN and MANAGER accounts and the demo catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.close()
		return seeders.RunAll(cmd.Context(), rt.db, cmd.OutOrStdout())
	},
}
