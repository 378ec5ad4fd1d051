package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/shapes"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd() *cobra.Command {
	var (
		shapesPath string
		checkUUIDs bool
	)

	cmd := &cobra.Command{
		Use:   "validate <data.ttl>",
		Short: "Validate instance data against the vocabulary shapes",
		Long: `Validate checks a Turtle file of instance data against the SHACL shapes
and reports every violation. With --uuids it additionally verifies that
hasUUID values are version 7 UUIDs, which the shape patterns alone cannot
express.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath := args[0]
			if err := fileMustExist(dataPath, "data file"); err != nil {
				return err
			}
			if err := fileMustExist(shapesPath, "shapes file"); err != nil {
				return err
			}

			data, err := rdf.DecodeTurtleFile(dataPath)
			if err != nil {
				return err
			}
			shapesGraph, err := rdf.DecodeTurtleFile(shapesPath)
			if err != nil {
				return err
			}
			nodeShapes, err := shapes.ParseShapes(shapesGraph)
			if err != nil {
				return err
			}

			report := shapes.Validate(data, nodeShapes)
			if checkUUIDs {
				uuidReport := shapes.CheckUUIDs(data, v4.HasUUID)
				report.Results = append(report.Results, uuidReport.Results...)
			}

			if report.Conforms() {
				fmt.Printf("%s conforms (%d shapes, %d triples)\n", dataPath, len(nodeShapes), data.Len())
				return nil
			}

			for _, r := range report.Results {
				fmt.Printf("  %s %s [%s]: %s\n", r.FocusNode, r.Path.LocalName(), r.Constraint, r.Message)
			}
			return fmt.Errorf("%d violation(s) in %s", len(report.Results), dataPath)
		},
	}

	cmd.Flags().StringVar(&shapesPath, "shapes", "ontology/v4/actions-shapes.ttl", "SHACL shapes file")
	cmd.Flags().BoolVar(&checkUUIDs, "uuids", false, "Also verify hasUUID values are UUIDv7")
	return cmd
}
