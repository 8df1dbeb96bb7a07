package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/config"
	"github.com/shashiranjanraj/ordermanager/pkg/storage"
)

var (
	exportPath string
	exportDisk string
)

// ordermanager orders:export
var exportCmd = &cobra.Command{
	Use:   "orders:export",
	Short: "Write a JSON snapshot of every order and its lines to a storage disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.close()

		name := exportDisk
		if name == "" {
			name = config.StorageDefault()
		}
		disk, err := storage.Open(cmd.Context(), name)
		if err != nil {
			return err
		}

		path := exportPath
		if path == "" {
			path = "exports/orders-" + time.Now().UTC().Format("20060102T150405Z") + ".json"
		}
		res, err := services.NewExportService(rt.db, disk).Export(cmd.Context(), path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d orders to %s (%s)\n", res.Orders, res.Path, res.URL)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "path", "", "destination path on the disk (default exports/orders-<timestamp>.json)")
	exportCmd.Flags().StringVar(&exportDisk, "disk", "", "storage disk: local or s3 (default STORAGE_DISK)")
}
