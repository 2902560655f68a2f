package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pentagongym/gymdiag/pkg/diagram/catalog"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m PickModel, keys ...tea.KeyMsg) (PickModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(PickModel)
	}
	return m, cmd
}

func TestPickModelNavigation(t *testing.T) {
	m := NewPickModel(catalog.All())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}

	m, _ = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}

	for range catalog.Names() {
		m, _ = press(t, m, runes("j"))
	}
	if m.Cursor != len(m.Diagrams)-1 {
		t.Errorf("cursor ran past the last row: %d", m.Cursor)
	}
}

func TestPickModelToggle(t *testing.T) {
	m := NewPickModel(catalog.All())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, runes("j"), runes("j"), runes("x"))
	sel := m.Selected()
	if len(sel) != 2 || sel[0].Name != catalog.ERD || sel[1].Name != catalog.SystemArchitecture {
		t.Fatalf("Selected() = %v", sel)
	}

	m, _ = press(t, m, runes("x"))
	if len(m.Selected()) != 1 {
		t.Error("second toggle did not clear the row")
	}

	m, _ = press(t, m, runes("a"))
	if len(m.Selected()) != len(m.Diagrams) {
		t.Error("a did not select everything")
	}
	m, _ = press(t, m, runes("a"))
	if len(m.Selected()) != 0 {
		t.Error("a with everything selected did not clear")
	}
}

func TestPickModelConfirm(t *testing.T) {
	m := NewPickModel(catalog.All())

	m, cmd := press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Confirmed || cmd == nil {
		t.Fatal("enter should confirm and quit")
	}
	if sel := m.Selected(); len(sel) != 1 || sel[0].Name != catalog.ClassDiagram {
		t.Errorf("enter without marks should take the cursor row, got %v", sel)
	}
}

func TestPickModelQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m, cmd := press(t, NewPickModel(catalog.All()), tea.KeyMsg{Type: tea.KeySpace}, k)
			if m.Confirmed || cmd == nil {
				t.Errorf("%s should quit without confirming", k)
			}
		})
	}
}

func TestPickModelIgnoresOtherMessages(t *testing.T) {
	m := NewPickModel(catalog.All())
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || next.(PickModel).Cursor != 0 {
		t.Error("window size message changed the model")
	}
	if m.Init() != nil {
		t.Error("Init() should not return a command")
	}
}

func TestPickModelView(t *testing.T) {
	m := NewPickModel(catalog.All())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	for _, want := range []string{"Select Diagrams", "[x]", "[ ]", catalog.ERD, "1 selected"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
