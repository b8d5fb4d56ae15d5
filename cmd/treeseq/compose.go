package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/treeseq/pkg/events"
	"github.com/vango-dev/treeseq/pkg/treeseq"
)

func iconCmd(opts *globalOptions) *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "icon <class>",
		Short: "Print the instructions emitted for an icon span",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd, func(b treeseq.Builder) (int, error) {
				return treeseq.AddIcon(b, start, args[0]), nil
			})
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "starting sequence number")

	return cmd
}

// Panel is the sample component opened by the demo command.
type Panel struct{}

func demoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the instructions emitted for a nested sample composition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.render(cmd, func(b treeseq.Builder) (int, error) {
				var err error
				final := treeseq.OpenElement(b, 0, "div", func(seq int) int {
					seq = treeseq.AddClass(b, seq, "toolbar", "toolbar-dense")
					seq = treeseq.AddString(b, seq, "title", " Play", "list ")
					if seq, err = treeseq.OnMouse(b, seq, events.Click, func() {}); err != nil {
						return seq
					}
					if seq, err = treeseq.OnFocus(b, seq, events.FocusIn, func() {}); err != nil {
						return seq
					}
					seq = treeseq.OpenComponentOf[Panel](b, seq, func(seq int) int {
						seq = treeseq.AddString(b, seq, "Heading", "Queue")
						return treeseq.AddContent(b, seq, treeseq.Fragment(func(b treeseq.Builder, seq int) int {
							return treeseq.AddIcon(b, seq, "gg-play-list-add")
						}))
					})
					return treeseq.AddIcon(b, seq, "gg-play-button")
				})
				return final, err
			})
		},
	}
}
