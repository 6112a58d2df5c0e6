package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "url <filename>",
		Short: "Print the retrieval URL for a stored filename",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), opts.client.ResolveURL(args[0]))
			return err
		},
	}
}
