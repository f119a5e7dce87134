package main

import (
	"errors"
	"fmt"

	"mangaapi/internal/catalog"
	"mangaapi/internal/extract"

	"github.com/spf13/cobra"
)

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var (
		urls   []string
		itemID string
		save   bool
		owner  string
	)
	cmd := &cobra.Command{
		Use:   "extract TITLE",
		Short: "Run the extraction pipeline and print the result",
		Long: "Run fetch, prompt, model call and parse for TITLE. With --save the result\n" +
			"is merged onto the stored item (or a new one) and saved with its authors\n" +
			"and venues.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, log, err := opts.pipeline()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			ctx := cmd.Context()

			resp, err := svc.Extract(ctx, extract.Request{Title: args[0], SourceURLs: urls})
			if err != nil {
				var perr *extract.PayloadError
				if errors.As(err, &perr) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "raw reply:\n%s\n", perr.Raw)
				}
				return err
			}
			if !save {
				return writeOutput(cmd.OutOrStdout(), opts.format, resp.Result)
			}

			store, err := catalog.OpenStore(ctx, cfg.DBDriver, cfg.DBDSN, cfg.DBTimeout)
			if err != nil {
				return err
			}
			defer store.Close()
			catalogSvc := catalog.NewService(store, log)

			base := catalog.Draft{Item: catalog.Item{ID: itemID, Title: args[0]}}
			if itemID != "" {
				detail, err := catalogSvc.Get(ctx, itemID)
				switch {
				case err == nil:
					base = detailDraft(detail)
				case !errors.Is(err, catalog.ErrNotFound):
					return err
				}
			}

			if owner == "" {
				owner = base.Item.OwnerID
			}
			res, err := catalogSvc.Save(ctx, catalog.Actor{UserID: owner, Admin: true}, svc.Apply(base, resp))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, res)
		},
	}
	cmd.Flags().StringSliceVarP(&urls, "url", "u", nil, "Source URL to fetch (repeatable)")
	cmd.Flags().BoolVar(&save, "save", false, "Merge the result into the catalog and save it")
	cmd.Flags().StringVar(&itemID, "id", "", "Item id to merge into (with --save)")
	cmd.Flags().StringVar(&owner, "owner", "", "user_id stamped on the saved item (default: the stored owner)")
	return cmd
}

func detailDraft(d catalog.Detail) catalog.Draft {
	draft := catalog.Draft{Item: d.Item}
	for _, a := range d.Authors {
		draft.Authors = append(draft.Authors, a.Name)
	}
	for _, v := range d.Venues {
		draft.Venues = append(draft.Venues, v.Name)
	}
	return draft
}
