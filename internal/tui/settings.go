package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/workday/internal/workcalc"
)

type settingsModel struct {
	session *session
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	inTime      *string
	plannedExit *string
	teaBreak    *string
	lunchBreak  *string
}

func newSettingsModel(s *session) settingsModel {
	in, exit, teaMin, lunchMin := "", "", "", ""
	return settingsModel{
		session:     s,
		inTime:      &in,
		plannedExit: &exit,
		teaBreak:    &teaMin,
		lunchBreak:  &lunchMin,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Edit) {
		return s.showForm()
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	p := s.session.prefs
	*s.inTime = p.ClockIn.String()
	*s.plannedExit = p.PlannedExit.String()
	*s.teaBreak = strconv.Itoa(p.TeaBreak)
	*s.lunchBreak = strconv.Itoa(p.LunchBreak)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Office in time (HH:MM)").Value(s.inTime).Validate(validateClock),
			huh.NewInput().Title("Planned exit time (HH:MM)").
				Description("Used for projection calculations").
				Value(s.plannedExit).Validate(validateClock),
		).Title("Time Logs"),
		huh.NewGroup(
			huh.NewInput().Title("Tea break (min)").Value(s.teaBreak).Validate(validateBreak),
			huh.NewInput().Title("Lunch break (min)").Value(s.lunchBreak).Validate(validateBreak),
		).Title("Breaks"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		return s.submit()
	}

	return s, cmd
}

// submit applies the form values to the session and saves them.
func (s settingsModel) submit() (settingsModel, tea.Cmd) {
	p, err := s.values()
	if err != nil {
		return s, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Invalid settings: %v", err), isError: true}
		}
	}
	save := s.session.update(p)
	return s, tea.Batch(save, func() tea.Msg { return prefsAppliedMsg{} })
}

func (s settingsModel) values() (workcalc.Preferences, error) {
	var p workcalc.Preferences
	var err error
	if p.ClockIn, err = workcalc.ParseClock(*s.inTime); err != nil {
		return p, fmt.Errorf("office in: %w", err)
	}
	if p.PlannedExit, err = workcalc.ParseClock(*s.plannedExit); err != nil {
		return p, fmt.Errorf("planned exit: %w", err)
	}
	if p.TeaBreak, err = parseBreak(*s.teaBreak); err != nil {
		return p, fmt.Errorf("tea break: %w", err)
	}
	if p.LunchBreak, err = parseBreak(*s.lunchBreak); err != nil {
		return p, fmt.Errorf("lunch break: %w", err)
	}
	return p, nil
}

func parseBreak(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number of minutes", v)
	}
	if err := workcalc.ValidateBreak(n); err != nil {
		return 0, err
	}
	return n, nil
}

func validateClock(v string) error {
	_, err := workcalc.ParseClock(v)
	return err
}

func validateBreak(v string) error {
	_, err := parseBreak(v)
	return err
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	p := s.session.prefs
	items := []struct{ label, value string }{
		{"Office in time", p.ClockIn.Kitchen()},
		{"Planned exit time", p.PlannedExit.Kitchen()},
		{"Tea break", fmt.Sprintf("%d min", p.TeaBreak)},
		{"Lunch break", fmt.Sprintf("%d min", p.LunchBreak)},
	}

	var rows []string
	rows = append(rows, title, "")
	for _, it := range items {
		label := lipgloss.NewStyle().Width(24).Render(it.label)
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(it.value)))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
