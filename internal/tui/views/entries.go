package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chloekelly42/timesheetTracker/internal/service"
	"github.com/chloekelly42/timesheetTracker/internal/timesheet"
	"github.com/chloekelly42/timesheetTracker/internal/timeutil"
	"github.com/chloekelly42/timesheetTracker/internal/tui/ui"
)

// entryMode represents the current mode of the entries view
type entryMode int

const (
	entryModeNormal entryMode = iota
	entryModeAdd
	entryModeEdit
	entryModeDelete
	entryModeOpen
	entryModeSaveAs
	entryModeDiscard
)

// discard confirmation targets
const (
	discardForOpen = "open"
	discardForNew  = "new"
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	cursor int
	rows   []*timesheet.Entry
	status string
	err    error

	// Input mode state
	mode         entryMode
	hoursInput   textinput.Model
	projectInput textinput.Model
	descInput    textinput.Model
	billable     bool
	focusedInput int // 0 = hours, 1 = project, 2 = description, 3 = billable
	editing      *timesheet.Entry
	formErr      error

	// File prompt state
	pathInput textinput.Model
	pending   string // discard confirmation target
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	hoursInput := textinput.New()
	hoursInput.Placeholder = "Hours (e.g., 1.5)..."
	hoursInput.CharLimit = 10
	hoursInput.Width = 12

	projectInput := textinput.New()
	projectInput.Placeholder = "Project (blank for default)..."
	projectInput.CharLimit = 50
	projectInput.Width = 30

	descInput := textinput.New()
	descInput.Placeholder = "What did you work on?..."
	descInput.CharLimit = 200
	descInput.Width = 50

	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/timesheet.json"
	pathInput.CharLimit = 200
	pathInput.Width = 50

	m := EntriesModel{
		services:     services,
		styles:       styles,
		keys:         keys,
		hoursInput:   hoursInput,
		projectInput: projectInput,
		descInput:    descInput,
		pathInput:    pathInput,
	}
	m.refreshRows()
	return m
}

// fileOpMsg is sent when a file operation (open/save) completes
type fileOpMsg struct {
	status string
	err    error
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case entryModeAdd, entryModeEdit:
			return m.handleInputMode(msg)
		case entryModeDelete:
			return m.handleDeleteMode(msg)
		case entryModeOpen, entryModeSaveAs:
			return m.handlePathMode(msg)
		case entryModeDiscard:
			return m.handleDiscardMode(msg)
		}
		return m.handleNormalMode(msg)

	case fileOpMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
			m.refreshRows()
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleNormalMode handles key events in the entry list
func (m EntriesModel) handleNormalMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.New):
		m.mode = entryModeAdd
		m.hoursInput.SetValue("")
		m.projectInput.SetValue("")
		m.descInput.SetValue("")
		m.billable = false
		m.formErr = nil
		m.focusField(0)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if len(m.rows) > 0 && m.cursor < len(m.rows) {
			entry := m.rows[m.cursor]
			m.mode = entryModeEdit
			m.editing = entry
			m.hoursInput.SetValue(timesheet.FormatHours(entry.Hours))
			m.projectInput.SetValue(entry.Project)
			m.descInput.SetValue(entry.Description)
			m.billable = entry.Billable
			m.formErr = nil
			m.focusField(0)
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if len(m.rows) > 0 && m.cursor < len(m.rows) {
			m.mode = entryModeDelete
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if m.services.Timesheet.Dirty() && len(m.rows) > 0 {
			m.mode = entryModeDiscard
			m.pending = discardForOpen
			return m, nil
		}
		return m.startOpenPrompt(), textinput.Blink
	case key.Matches(msg, m.keys.Save):
		if m.services.Timesheet.Path() == "" {
			return m.startSaveAsPrompt(), textinput.Blink
		}
		return m, m.saveSheet()
	case key.Matches(msg, m.keys.SaveAs):
		return m.startSaveAsPrompt(), textinput.Blink
	case key.Matches(msg, m.keys.NewSheet):
		if m.services.Timesheet.Dirty() && len(m.rows) > 0 {
			m.mode = entryModeDiscard
			m.pending = discardForNew
			return m, nil
		}
		m.services.Timesheet.New()
		m.status = "Started a new timesheet"
		m.refreshRows()
		return m, nil
	}
	return m, nil
}

// handleInputMode handles key events when in add/edit mode
func (m EntriesModel) handleInputMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		return m.submitEntryForm()
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		m.editing = nil
		m.formErr = nil
		m.blurInputs()
		return m, nil
	case msg.String() == "tab":
		m.focusField((m.focusedInput + 1) % 4)
		return m, textinput.Blink
	case msg.String() == "shift+tab":
		m.focusField((m.focusedInput + 3) % 4)
		return m, textinput.Blink
	case msg.String() == " " && m.focusedInput == 3:
		m.billable = !m.billable
		return m, nil
	}

	// Pass other keys to the focused input
	var cmd tea.Cmd
	switch m.focusedInput {
	case 0:
		m.hoursInput, cmd = m.hoursInput.Update(msg)
	case 1:
		m.projectInput, cmd = m.projectInput.Update(msg)
	case 2:
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// submitEntryForm validates the form and applies the add or edit
func (m EntriesModel) submitEntryForm() (EntriesModel, tea.Cmd) {
	hours := strings.TrimSpace(m.hoursInput.Value())
	project := strings.TrimSpace(m.projectInput.Value())
	desc := strings.TrimSpace(m.descInput.Value())
	if hours == "" {
		return m, nil
	}

	svc := m.services.Timesheet
	if m.mode == entryModeEdit && m.editing != nil {
		if _, err := svc.Edit(m.editing, hours, project, desc, m.billable); err != nil {
			m.formErr = err
			return m, nil
		}
		m.status = "Entry updated"
	} else {
		entry, err := svc.Add(hours, project, desc, m.billable, time.Now())
		if err != nil {
			m.formErr = err
			return m, nil
		}
		m.status = fmt.Sprintf("Logged %s hours on %s", timesheet.FormatHours(entry.Hours), entry.Project)
	}

	m.mode = entryModeNormal
	m.editing = nil
	m.formErr = nil
	m.err = nil
	m.blurInputs()
	m.refreshRows()
	return m, nil
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m EntriesModel) handleDeleteMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.cursor < len(m.rows) {
			entry := m.rows[m.cursor]
			if err := m.services.Timesheet.Remove(entry); err != nil {
				m.err = err
			} else {
				m.status = "Entry removed"
				m.err = nil
			}
			m.refreshRows()
		}
		m.mode = entryModeNormal
	case "n", "N", "esc":
		m.mode = entryModeNormal
	}
	return m, nil
}

// handlePathMode handles key events when prompting for a file path
func (m EntriesModel) handlePathMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		mode := m.mode
		m.mode = entryModeNormal
		m.pathInput.Blur()
		if mode == entryModeOpen {
			return m, m.openSheet(path)
		}
		return m, m.saveSheetAs(path)
	case key.Matches(msg, m.keys.Back): // Escape
		m.mode = entryModeNormal
		m.pathInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// handleDiscardMode handles the unsaved-changes confirmation
func (m EntriesModel) handleDiscardMode(msg tea.KeyMsg) (EntriesModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		pending := m.pending
		m.pending = ""
		if pending == discardForOpen {
			return m.startOpenPrompt(), textinput.Blink
		}
		m.mode = entryModeNormal
		m.services.Timesheet.New()
		m.status = "Started a new timesheet"
		m.refreshRows()
	case "n", "N", "esc":
		m.mode = entryModeNormal
		m.pending = ""
	}
	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	switch m.mode {
	case entryModeAdd:
		return m.renderEntryForm("New Entry")
	case entryModeEdit:
		return m.renderEntryForm("Edit Entry")
	case entryModeDelete:
		return m.renderDeleteConfirm()
	case entryModeOpen:
		return m.renderPathPrompt("Open Timesheet")
	case entryModeSaveAs:
		return m.renderPathPrompt("Save Timesheet As")
	case entryModeDiscard:
		return m.renderDiscardConfirm()
	}

	var b strings.Builder

	title := "Timesheet"
	if path := m.services.Timesheet.Path(); path != "" {
		title = fmt.Sprintf("Timesheet (%s)", path)
	}
	if m.services.Timesheet.Dirty() {
		title += m.styles.DirtyMarker.Render(" *")
	}
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries yet"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press 'n' to log time"))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.rows, m.styles, EntryRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	b.WriteString(strings.Repeat("─", min(50, max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.renderTotals())

	return b.String()
}

// renderTotals renders the running totals footer
func (m EntriesModel) renderTotals() string {
	svc := m.services.Timesheet
	t := svc.Sheet()

	var b strings.Builder
	b.WriteString(m.styles.TotalsLabel.Render("Total: "))
	b.WriteString(m.styles.TotalsValue.Render(timesheet.FormatHours(t.TotalHours()) + "h"))
	b.WriteString(m.styles.TotalsLabel.Render("  Billable: "))
	b.WriteString(m.styles.TotalsValue.Render(timesheet.FormatHours(t.BillableHours()) + "h"))
	if t.OffsetHours() > 0 {
		b.WriteString(m.styles.TotalsLabel.Render("  Lunch: "))
		b.WriteString(m.styles.TotalsValue.Render(timesheet.FormatHours(t.OffsetHours()) + "h"))
	}
	b.WriteString(m.styles.TotalsLabel.Render("  Expected end: "))
	b.WriteString(m.styles.TotalsValue.Render(timeutil.FormatClock(svc.ExpectedEnd())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s", t.Len(), pluralize("entry", t.Len())))
	return b.String()
}

// renderEntryForm renders the add/edit entry form
func (m EntriesModel) renderEntryForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Hours:", 0))
	b.WriteString("\n")
	b.WriteString(m.hoursInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Project:", 1))
	b.WriteString("\n")
	b.WriteString(m.projectInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderFieldLabel("Description:", 2))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")

	checkbox := "[ ] billable"
	if m.billable {
		checkbox = "[x] billable"
	}
	b.WriteString(m.renderFieldLabel(checkbox, 3))
	b.WriteString("\n\n")

	if m.formErr != nil {
		b.WriteString(m.styles.Error.Render(m.formErr.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Tab to switch fields, Space toggles billable, Enter to save, Esc to cancel"))
	return b.String()
}

func (m EntriesModel) renderFieldLabel(label string, field int) string {
	if m.focusedInput == field {
		return m.styles.StatLabel.Render("▸ " + label)
	}
	return m.styles.StatLabel.Render(label)
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m EntriesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Entry"))
	b.WriteString("\n\n")

	if m.cursor < len(m.rows) {
		entry := m.rows[m.cursor]
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Hours: "))
		b.WriteString(m.styles.StatValue.Render(timesheet.FormatHours(entry.Hours)))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Project: "))
		b.WriteString(m.styles.StatValue.Render(entry.Project))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Description: "))
		b.WriteString(m.styles.StatValue.Render(entry.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// renderPathPrompt renders the open/save-as file path prompt
func (m EntriesModel) renderPathPrompt(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to confirm, Esc to cancel"))
	return b.String()
}

// renderDiscardConfirm renders the unsaved-changes confirmation dialog
func (m EntriesModel) renderDiscardConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Unsaved Changes"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Warning.Render("The current timesheet has unsaved changes. Discard them?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Press Y to discard, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	switch m.mode {
	case entryModeAdd, entryModeEdit, entryModeOpen, entryModeSaveAs:
		return true
	}
	return false
}

// refreshRows rebuilds the display rows, sorted by project
func (m *EntriesModel) refreshRows() {
	entries := m.services.Timesheet.Sheet().Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Project) < strings.ToLower(entries[j].Project)
	})
	m.rows = entries
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
}

func (m *EntriesModel) focusField(field int) {
	m.focusedInput = field
	m.blurInputs()
	switch field {
	case 0:
		m.hoursInput.Focus()
	case 1:
		m.projectInput.Focus()
	case 2:
		m.descInput.Focus()
	}
}

func (m *EntriesModel) blurInputs() {
	m.hoursInput.Blur()
	m.projectInput.Blur()
	m.descInput.Blur()
}

func (m EntriesModel) startOpenPrompt() EntriesModel {
	m.mode = entryModeOpen
	m.pathInput.SetValue("")
	m.pathInput.Focus()
	return m
}

func (m EntriesModel) startSaveAsPrompt() EntriesModel {
	m.mode = entryModeSaveAs
	m.pathInput.SetValue(m.services.Timesheet.Path())
	m.pathInput.Focus()
	return m
}

// openSheet creates a command to load a timesheet from disk
func (m EntriesModel) openSheet(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Timesheet.Load(path); err != nil {
			return fileOpMsg{err: err}
		}
		return fileOpMsg{status: fmt.Sprintf("Opened %s", path)}
	}
}

// saveSheet creates a command to save to the current file
func (m EntriesModel) saveSheet() tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Timesheet.Save(); err != nil {
			return fileOpMsg{err: err}
		}
		return fileOpMsg{status: fmt.Sprintf("Saved %s", m.services.Timesheet.Path())}
	}
}

// saveSheetAs creates a command to save to a new file
func (m EntriesModel) saveSheetAs(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Timesheet.SaveAs(path); err != nil {
			return fileOpMsg{err: err}
		}
		return fileOpMsg{status: fmt.Sprintf("Saved %s", path)}
	}
}
