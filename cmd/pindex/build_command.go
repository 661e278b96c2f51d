package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pindex/internal/cluster"
	"pindex/internal/sources"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the master catalog from the downloaded corpora",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			builder := cluster.NewBuilder(cfg, sources.NewCache(logger), logger)
			doc, err := builder.Build(cmd.Context())
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = cfg.Build.OutputPath
			}
			if err := doc.WriteFile(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Master catalog with %d tables written to %s (build %s)\n",
				len(doc.Tables), target, doc.BuildID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Master catalog destination (defaults to the configured path)")
	return cmd
}
