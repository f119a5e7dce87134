package main

import (
	"fmt"

	"mangaapi/internal/extract"

	"github.com/spf13/cobra"
)

func newPromptCmd(opts *rootOptions) *cobra.Command {
	var (
		urls  []string
		prior []string
	)
	cmd := &cobra.Command{
		Use:   "prompt TITLE",
		Short: "Fetch sources and print the model prompt for manual use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, log, err := opts.pipeline()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			prompt, fetched, err := svc.Prepare(cmd.Context(), extract.Request{
				Title:        args[0],
				SourceURLs:   urls,
				PriorSources: prior,
			})
			if err != nil {
				return err
			}
			for _, f := range fetched.Failures {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %s\n", f.URL, f.Reason)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&urls, "url", "u", nil, "Source URL to fetch (repeatable)")
	cmd.Flags().StringSliceVar(&prior, "prior", nil, "Previously used source URL (repeatable)")
	return cmd
}
