package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"superapp/pkg/logger"
	"superapp/pkg/views"
)

func printRoutes(out io.Writer, basePath string, log logger.ILogger) error {
	nav, err := views.NewTable(basePath, log)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tLOAD\tVIEW")
	for _, e := range nav.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Path, e.Name, e.LoadStrategy, e.Target)
	}
	return tw.Flush()
}
