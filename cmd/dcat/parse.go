package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/processor"
)

func newParseCommand(root *rootOptions) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Extract dataset records from RDF documents",
		Long: `Parse reads one or more RDF documents (or stdin when no files are
given), runs the configured profile chain over every dataset node and
prints the resulting records as a JSON array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.processorOptions()
			if err != nil {
				return err
			}
			return runParse(cmd, opts, args, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Input syntax: turtle, ntriples, rdfxml, jsonld, trig, nquads")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write records to this file instead of stdout")
	return cmd
}

func runParse(cmd *cobra.Command, opts processor.Options, paths []string, format, output string) error {
	ctx := cmd.Context()

	var records []*dataset.Dataset
	if len(paths) == 0 {
		parser, err := processor.NewParser(opts)
		if err != nil {
			return err
		}
		if err := parser.Parse(ctx, cmd.InOrStdin(), format); err != nil {
			return err
		}
		records, err = parser.Datasets()
		if err != nil {
			return err
		}
	} else {
		// Each file gets its own parser so documents cannot bleed into
		// each other; files are independent, so they run concurrently.
		perFile := make([][]*dataset.Dataset, len(paths))
		g, ctx := errgroup.WithContext(ctx)
		for i, path := range paths {
			g.Go(func() error {
				parser, err := processor.NewParser(opts)
				if err != nil {
					return err
				}
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := parser.Parse(ctx, f, format); err != nil {
					return err
				}
				perFile[i], err = parser.Datasets()
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, batch := range perFile {
			records = append(records, batch...)
		}
	}

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
