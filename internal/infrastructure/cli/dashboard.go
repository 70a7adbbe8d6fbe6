package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI overview of every spec",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := initialDashboard()
		if err != nil {
			return MapError(err)
		}
		if os.Getenv("SPECSYNC_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

var dashboardBaseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type dashboardModel struct {
	table table.Model
	specs int
}

func initialDashboard() (dashboardModel, error) {
	rows, err := collectStatus()
	if err != nil {
		return dashboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Spec", Width: 10},
		{Title: "Feature", Width: 30},
		{Title: "Status", Width: 10},
		{Title: "Implemented", Width: 12},
		{Title: "Missing", Width: 8},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{
			r.SpecID,
			r.Feature,
			r.Status,
			fmt.Sprintf("%d/%d (%.1f%%)", r.Implemented, r.Total, r.Percent),
			fmt.Sprintf("%d", r.Missing),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)

	return dashboardModel{table: t, specs: len(rows)}, nil
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	header := headerStyle.Render(fmt.Sprintf("specsync — %d specs", m.specs))
	return dashboardBaseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.table.View(),
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}
