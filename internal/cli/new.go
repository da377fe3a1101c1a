package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
)

// newCommand creates the "new" command for scaffolding a document.
func (c *CLI) newCommand() *cobra.Command {
	var (
		output  string
		sources string
		targets string
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new mapping document",
		Long: `Create a new mapping document with optional starter columns.

Attribute lists are comma-separated IDs. An "id=Label" entry assigns a
display label:

  wiremap new orders -s "sku=SKU,price" -t "product_code,unit_price" -o orders.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := document.New(args[0])
			var err error
			if doc.Sources.Attributes, err = parseAttributes(sources); err != nil {
				return err
			}
			if doc.Targets.Attributes, err = parseAttributes(targets); err != nil {
				return err
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			path := output
			if path == "" {
				path = args[0] + ".json"
			}
			if err := document.WriteFile(doc, path); err != nil {
				return err
			}

			printSuccess("Created %s", doc.Name)
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.json)")
	cmd.Flags().StringVarP(&sources, "sources", "s", "", "comma-separated source attribute IDs")
	cmd.Flags().StringVarP(&targets, "targets", "t", "", "comma-separated target attribute IDs")

	return cmd
}

// parseAttributes parses "id" or "id=Label" entries from a comma-separated
// list.
func parseAttributes(s string) ([]document.Attribute, error) {
	if s == "" {
		return nil, nil
	}
	var attrs []document.Attribute
	for _, entry := range strings.Split(s, ",") {
		id, label, _ := strings.Cut(strings.TrimSpace(entry), "=")
		if err := errors.ValidateNodeID(id); err != nil {
			return nil, err
		}
		attrs = append(attrs, document.Attribute{ID: id, Label: label})
	}
	return attrs, nil
}
