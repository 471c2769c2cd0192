package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chloekelly42/timesheetTracker/internal/service"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
	"github.com/chloekelly42/timesheetTracker/internal/tui/ui"
)

// SummaryModel is the model for the summary view
type SummaryModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
}

// NewSummaryModel creates a new summary view model
func NewSummaryModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SummaryModel {
	return SummaryModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// Init implements tea.Model
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}
	return m, nil
}

// View implements tea.Model
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Summary"))
	b.WriteString("\n\n")

	svc := m.services.Timesheet
	t := svc.Sheet()

	if t.Len() == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries yet"))
		return b.String()
	}

	b.WriteString(m.renderStat("Entries", fmt.Sprintf("%d", t.Len())))
	b.WriteString(m.renderStat("Total time", timesheet.FormatHours(t.TotalHours())+" hours"))
	b.WriteString(m.renderStat("Billable time", timesheet.FormatHours(t.BillableHours())+" hours"))
	b.WriteString(m.renderStat("Lunch offset", timesheet.FormatHours(t.OffsetHours())+" hours"))
	b.WriteString("\n")

	letters := t.GroupLetters()
	if len(letters) > 0 {
		b.WriteString(m.styles.StatLabel.Render("Billable by project initial:"))
		b.WriteString("\n")
		groups := t.ProjectGroups()
		for _, letter := range letters {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.styles.EntryProject.Render(letter),
				m.styles.StatValue.Render(timesheet.FormatHours(groups[letter])+"h")))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")

	start := svc.StartOfDay()
	b.WriteString(m.renderStat(
		fmt.Sprintf("Expected end (%s start)", timeutil.FormatClock(start)),
		timeutil.FormatClock(svc.ExpectedEnd())))

	return b.String()
}

func (m SummaryModel) renderStat(label, value string) string {
	return m.styles.StatLabel.Render(label+":") + " " + m.styles.StatValue.Render(value) + "\n"
}

// SetSize sets the view dimensions
func (m *SummaryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
