package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// inspectCommand creates the inspect command for summarizing a document.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a mapping document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}
			printDocumentSummary(doc)
			return nil
		},
	}
}

func printDocumentSummary(doc *document.Document) {
	fmt.Println(StyleTitle.Render(doc.Name))
	printKeyValue("id", doc.ID)
	printKeyValue("sources", fmt.Sprintf("%d", len(doc.Sources.Attributes)))
	printKeyValue("targets", fmt.Sprintf("%d", len(doc.Targets.Attributes)))
	printKeyValue("links", fmt.Sprintf("%d", len(doc.Links)))
	printNewline()

	store := doc.Store()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("SOURCE", "", "TARGET")

	for _, a := range doc.Sources.Attributes {
		target, ok := store.Target(a.ID)
		arrow, label := "", ""
		if ok {
			arrow = iconArrow
			if attr, found := doc.Targets.Get(target); found {
				label = attr.DisplayLabel()
			} else {
				label = target
			}
		}
		t.Row(a.DisplayLabel(), arrow, label)
	}

	fmt.Println(t.Render())

	unmapped := 0
	for _, a := range doc.Targets.Attributes {
		if !store.HasConnection(a.ID, mapping.RoleTarget) {
			unmapped++
		}
	}
	if unmapped > 0 {
		printDetail("%d target attribute(s) not yet mapped", unmapped)
	}
}
