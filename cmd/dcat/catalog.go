package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/processor"
)

var errMissingCatalogRef = errors.New("no catalog URI: set --catalog-ref or site_url in the configuration")

func newCatalogCommand(root *rootOptions) *cobra.Command {
	var format string
	var output string
	var catalogRef string
	var c dataset.Catalog

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Render the site catalog node",
		Long: `Catalog writes the site-level dcat:Catalog description on its own,
taking title, description, homepage and language from the flags and
falling back to the site configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.processorOptions()
			if err != nil {
				return err
			}
			serializer, err := processor.NewSerializer(opts)
			if err != nil {
				return err
			}
			if catalogRef == "" && opts.Profile.Config != nil {
				catalogRef = opts.Profile.Config.SiteURL
			}
			if catalogRef == "" {
				return errMissingCatalogRef
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
			return serializer.SerializeDatasets(cmd.Context(), out, format, &c, catalogRef, nil)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output syntax: turtle, ntriples, rdfxml, jsonld, trig, nquads")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().StringVar(&catalogRef, "catalog-ref", "", "Catalog URI (defaults to the configured site URL)")
	cmd.Flags().StringVar(&c.Title, "title", "", "Catalog title")
	cmd.Flags().StringVar(&c.Description, "description", "", "Catalog description")
	cmd.Flags().StringVar(&c.Homepage, "homepage", "", "Catalog homepage")
	cmd.Flags().StringVar(&c.Language, "language", "", "Catalog language")
	return cmd
}
