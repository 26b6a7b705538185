package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

func runRoutes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := newApplication(cfg, logger, nil)

	return printRoutes(cmd.OutOrStdout(), app.router)
}

type routeEntry struct {
	method  string
	pattern string
}

// collectRoutes lists every method and pattern registered on r, sorted by pattern.
func collectRoutes(r chi.Routes) ([]routeEntry, error) {
	var entries []routeEntry
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		entries = append(entries, routeEntry{method: method, pattern: route})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pattern != entries[j].pattern {
			return entries[i].pattern < entries[j].pattern
		}
		return entries[i].method < entries[j].method
	})
	return entries, nil
}

func printRoutes(w io.Writer, r chi.Routes) error {
	entries, err := collectRoutes(r)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.method, e.pattern)
	}
	return tw.Flush()
}
