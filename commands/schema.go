package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clearhead-us/actions-vocabulary/rdf"
	"github.com/clearhead-us/actions-vocabulary/schema"
	"github.com/clearhead-us/actions-vocabulary/shapes"
	"github.com/clearhead-us/actions-vocabulary/vocabulary/v4"
)

// NewSchemaCmd creates the schema subcommand.
func NewSchemaCmd() *cobra.Command {
	var (
		shapesPath string
		outDir     string
		jtd        bool
	)

	cmd := &cobra.Command{
		Use:   "schema <ontology.ttl>",
		Short: "Generate JSON Schema (and optionally JTD) from the ontology",
		Long: `Schema derives JSON Schema documents from the OWL ontology and SHACL
shapes: the ontology supplies the property inventory per class, the shapes
supply required fields and value constraints. With --jtd it additionally
emits JSON Type Definition files for code generation.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ontologyPath := args[0]
			if err := fileMustExist(ontologyPath, "ontology file"); err != nil {
				return err
			}
			if err := fileMustExist(shapesPath, "shapes file"); err != nil {
				return err
			}

			ontology, err := rdf.DecodeTurtleFile(ontologyPath)
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

			baseID := strings.TrimSuffix(v4.Namespace, "/v4#") + "/schemas"
			g := schema.NewGenerator(ontology, nodeShapes, baseID)
			classSchemas, err := g.WriteJSONSchemas(outDir)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %d JSON Schemas to %s\n", len(classSchemas)+1, outDir)

			if jtd {
				jtdDir := outDir + "/jtd"
				if err := g.WriteJTD(jtdDir, "4.0.0"); err != nil {
					return err
				}
				fmt.Printf("Wrote JTD definitions to %s\n", jtdDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shapesPath, "shapes", "ontology/v4/actions-shapes.ttl", "SHACL shapes file")
	cmd.Flags().StringVar(&outDir, "out", "schemas", "Output directory")
	cmd.Flags().BoolVar(&jtd, "jtd", false, "Also emit JTD type definitions")
	return cmd
}
