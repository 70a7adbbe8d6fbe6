package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDashboardCmd_Internal(t *testing.T) {
	inWorkspace(t)
	t.Setenv("SPECSYNC_SKIP_DASHBOARD_RUN", "true")

	if err := execute(t, "init"); err != nil {
		t.Fatal(err)
	}
	err := execute(t, "create", "User Login",
		"--req", "The system shall validate credentials")
	if err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "dashboard"); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
}

func TestDashboardModel(t *testing.T) {
	inWorkspace(t)
	if err := execute(t, "init"); err != nil {
		t.Fatal(err)
	}
	err := execute(t, "create", "User Login",
		"--req", "The system shall validate credentials")
	if err != nil {
		t.Fatal(err)
	}

	m, err := initialDashboard()
	if err != nil {
		t.Fatalf("initialDashboard: %v", err)
	}
	if m.specs != 1 {
		t.Errorf("specs = %d, want 1", m.specs)
	}

	view := m.View()
	if !strings.Contains(view, "SPEC-001") {
		t.Errorf("view missing spec row:\n%s", view)
	}
	if !strings.Contains(view, "[q] Quit") {
		t.Error("view missing key help")
	}

	// q quits.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	// Other keys go to the table.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if _, ok := updated.(dashboardModel); !ok {
		t.Fatal("model type changed on update")
	}
}

func TestDashboardEmptyWorkspace(t *testing.T) {
	inWorkspace(t)
	if err := execute(t, "init"); err != nil {
		t.Fatal(err)
	}

	m, err := initialDashboard()
	if err != nil {
		t.Fatalf("initialDashboard: %v", err)
	}
	if m.specs != 0 {
		t.Errorf("specs = %d, want 0", m.specs)
	}
	if got := len(m.table.Rows()); got != 0 {
		t.Errorf("table rows = %d, want 0", got)
	}
}
