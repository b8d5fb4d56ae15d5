package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/treeseq/internal/errors"
	"github.com/vango-dev/treeseq/pkg/events"
)

var tableNames = []string{"mouse", "touch", "focus"}

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "events [mouse|touch|focus]",
		Short:     "Print event attribute name tables",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tableNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := tableNames
			if len(args) == 1 {
				name := strings.ToLower(args[0])
				if !contains(tableNames, name) {
					return errors.New(errors.CodeUnknownCommand).
						WithDetailf("unknown table %q", args[0]).
						WithSuggestion("Use one of: " + strings.Join(tableNames, ", "))
				}
				tables = []string{name}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, table := range tables {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := writeTable(w, table); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}

func writeTable(w io.Writer, table string) error {
	fmt.Fprintf(w, "%s\tVALUE\tATTRIBUTE\n", strings.ToUpper(table))
	row := func(value int, event fmt.Stringer, name string, err error) error {
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", event, value, name)
		return nil
	}

	switch table {
	case "mouse":
		for _, e := range events.MouseEvents() {
			name, err := e.Name()
			if err := row(int(e), e, name, err); err != nil {
				return err
			}
		}
	case "touch":
		for _, e := range events.TouchEvents() {
			name, err := e.Name()
			if err := row(int(e), e, name, err); err != nil {
				return err
			}
		}
	case "focus":
		for _, e := range events.FocusEvents() {
			name, err := e.Name()
			if err := row(int(e), e, name, err); err != nil {
				return err
			}
		}
	}
	return nil
}

func lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <event>",
		Short: "Resolve an event name (\"click\" or \"onclick\") in every table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if e, err := events.ParseMouse(args[0]); err == nil {
				fmt.Fprintf(out, "mouse\t%d\t%s\n", int(e), e.MustName())
				return nil
			}
			if e, err := events.ParseTouch(args[0]); err == nil {
				fmt.Fprintf(out, "touch\t%d\t%s\n", int(e), e.MustName())
				return nil
			}
			e, err := events.ParseFocus(args[0])
			if err != nil {
				return errors.New(errors.CodeUnmappedEnum).
					WithDetailf("%q is not a mouse, touch or focus event", args[0]).
					WithSuggestion("Run 'treeseq events' to list known events")
			}
			fmt.Fprintf(out, "focus\t%d\t%s\n", int(e), e.MustName())
			return nil
		},
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
