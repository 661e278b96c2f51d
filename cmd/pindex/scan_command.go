package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"pindex/internal/catalog"
	"pindex/internal/enrich"
	"pindex/internal/sources"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Match a scan result against the spreadsheet corpus and update the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			release, err := lockCatalog(cfg)
			if err != nil {
				return err
			}
			defer release()

			store, err := catalog.OpenStore(cfg.Catalog.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			session := enrich.NewSession(cfg, store, sources.NewCache(logger), logger)
			result, err := session.Run(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Scanned", "Matched", "Unmatched", "Skipped", "Catalog"},
				[][]string{{
					strconv.Itoa(result.Scanned),
					strconv.Itoa(result.Stats.Matched),
					strconv.Itoa(result.Stats.Unmatched),
					strconv.Itoa(result.Stats.Skipped),
					strconv.Itoa(len(result.Tables)),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Scan result JSON file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
