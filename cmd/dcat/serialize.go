package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kangmoesss/ckanext-dcat/dataset"
	"github.com/kangmoesss/ckanext-dcat/processor"
)

func newSerializeCommand(root *rootOptions) *cobra.Command {
	var format string
	var output string
	var catalogRef string
	var validate bool

	cmd := &cobra.Command{
		Use:   "serialize [record.json...]",
		Short: "Render dataset records as an RDF document",
		Long: `Serialize reads dataset records from JSON files (or stdin when no
files are given; a file may hold one record or an array) and writes one
RDF document containing all of them. With --catalog-ref the document
also carries the site catalog node linking every dataset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.processorOptions()
			if err != nil {
				return err
			}
			return runSerialize(cmd, opts, args, format, output, catalogRef, validate)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output syntax: turtle, ntriples, rdfxml, jsonld, trig, nquads")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file instead of stdout")
	cmd.Flags().StringVar(&catalogRef, "catalog-ref", "", "Emit a catalog node under this URI")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate records against the record schema first")
	return cmd
}

func runSerialize(cmd *cobra.Command, opts processor.Options, paths []string, format, output, catalogRef string, validate bool) error {
	ctx := cmd.Context()

	var records []*dataset.Dataset
	if len(paths) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		records, err = decodeRecords(data, validate)
		if err != nil {
			return err
		}
	} else {
		perFile := make([][]*dataset.Dataset, len(paths))
		g, _ := errgroup.WithContext(ctx)
		for i, path := range paths {
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				batch, err := decodeRecords(data, validate)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				perFile[i] = batch
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, batch := range perFile {
			records = append(records, batch...)
		}
	}

	serializer, err := processor.NewSerializer(opts)
	if err != nil {
		return err
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
	return serializer.SerializeDatasets(ctx, out, format, nil, catalogRef, records)
}

// decodeRecords accepts either a single record object or an array.
func decodeRecords(data []byte, validate bool) ([]*dataset.Dataset, error) {
	var records []*dataset.Dataset
	if err := json.Unmarshal(data, &records); err != nil {
		var single dataset.Dataset
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		records = []*dataset.Dataset{&single}
	}
	if validate {
		for _, r := range records {
			encoded, err := json.Marshal(r)
			if err != nil {
				return nil, err
			}
			if err := dataset.ValidateJSON(encoded); err != nil {
				return nil, err
			}
		}
	}
	return records, nil
}
