package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
)

// listCommand creates the list command showing the diagram catalog.
func (c *CLI) listCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagrams := catalog.All()
			if namesOnly {
				for _, d := range diagrams {
					fmt.Fprintln(out, d.Name)
				}
				return nil
			}
			printTable(catalogTable(diagrams))
			printNextStep("Generate one", fmt.Sprintf("%s generate %s", appName, diagrams[0].Name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print names only, one per line")
	return cmd
}

// catalogTable tabulates diagrams with their element counts.
func catalogTable(diagrams []*diagram.Diagram) *tableRows {
	t := &tableRows{headers: []string{"#", "Name", "Kind", "Title", "Elements"}}
	for i, d := range diagrams {
		t.rows = append(t.rows, []string{
			strconv.Itoa(i + 1),
			d.Name,
			string(d.Kind),
			d.Title,
			elements(d),
		})
	}
	return t
}

// elements describes what a diagram contains, e.g. "9 boxes, 11 links".
func elements(d *diagram.Diagram) string {
	if d.Sequence != nil {
		return fmt.Sprintf("%d participants, %d messages", len(d.Sequence.Participants), len(d.Sequence.Messages))
	}
	s := fmt.Sprintf("%d boxes", len(d.Boxes))
	if n := len(d.Relationships); n > 0 {
		s += fmt.Sprintf(", %d links", n)
	}
	return s
}
