package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pentagongym/gymdiag/pkg/diagram"
	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PickModel - Interactive diagram selection
// =============================================================================

// PickModel is the bubbletea model for choosing which diagrams to generate.
type PickModel struct {
	Diagrams  []*diagram.Diagram
	Cursor    int
	Chosen    map[int]bool
	Confirmed bool
}

// NewPickModel creates a pick model with nothing selected.
func NewPickModel(diagrams []*diagram.Diagram) PickModel {
	return PickModel{Diagrams: diagrams, Chosen: make(map[int]bool)}
}

func (m PickModel) Init() tea.Cmd {
	return nil
}

func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Confirmed = false
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Diagrams)-1 {
			m.Cursor++
		}
	case " ", "x":
		m.Chosen[m.Cursor] = !m.Chosen[m.Cursor]
	case "a":
		all := len(m.Selected()) < len(m.Diagrams)
		for i := range m.Diagrams {
			m.Chosen[i] = all
		}
	case "enter":
		// Enter with nothing marked takes the row under the cursor.
		if len(m.Selected()) == 0 && len(m.Diagrams) > 0 {
			m.Chosen[m.Cursor] = true
		}
		m.Confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

// Selected returns the chosen diagrams in catalog order.
func (m PickModel) Selected() []*diagram.Diagram {
	var out []*diagram.Diagram
	for i, d := range m.Diagrams {
		if m.Chosen[i] {
			out = append(out, d)
		}
	}
	return out
}

func (m PickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagrams"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Diagrams))
	for i, d := range m.Diagrams {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Chosen[i] {
			mark = "[x]"
		}
		rows[i] = []string{cursor + mark, d.Name, string(d.Kind)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Diagram", "Kind").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := lipgloss.NewStyle()
			if m.Chosen[row] {
				base = base.Foreground(colorGreen)
			} else if col == 2 {
				base = base.Foreground(colorDim)
			}
			if row == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d selected", len(m.Selected()))))

	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// pickCommand creates the interactive pick command.
func (c *CLI) pickCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose diagrams interactively, then generate them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPickModel(catalog.All()))
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(PickModel)
			if !ok || !fm.Confirmed || len(fm.Selected()) == 0 {
				printDetail("No selection made")
				return nil
			}
			return c.generate(cmd.Context(), fm.Selected(), cfg.Options())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "configuration file (default ~/.config/gymdiag/config.toml)")
	return cmd
}
