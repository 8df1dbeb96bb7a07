package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shashiranjanraj/ordermanager/pkg/migration"
	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

// PrintRoutes writes the route:list table.
func PrintRoutes(w io.Writer, routes []router.Route) error {
	if len(routes) == 0 {
		_, err := fmt.Fprintln(w, "No routes registered.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tNAME\tAUTH")
	fmt.Fprintln(tw, "------\t----\t----\t----")
	for _, r := range routes {
		auth := "bearer"
		if r.Public {
			auth = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Method, r.Path, r.Name, auth)
	}
	return tw.Flush()
}

// PrintMigrationStatus writes the migrate:status table.
func PrintMigrationStatus(w io.Writer, rows []migration.Status) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No migrations registered.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "MIGRATION\tRAN\tBATCH")
	for _, s := range rows {
		ran, batch := "no", "-"
		if s.Ran {
			ran, batch = "yes", fmt.Sprint(s.Batch)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, ran, batch)
	}
	return tw.Flush()
}
