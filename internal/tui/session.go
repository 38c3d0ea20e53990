package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/workday/internal/store"
	"github.com/sadopc/workday/internal/workcalc"
)

// session is the per-run tracker state shared by the views. It is only
// mutated from Update, on the program goroutine.
type session struct {
	store  store.PreferencesStore
	logger *slog.Logger
	now    func() time.Time

	prefs workcalc.Preferences
	live  workcalc.LiveStatus
	proj  workcalc.Projection
}

func newSession(ps store.PreferencesStore, prefs workcalc.Preferences, logger *slog.Logger) *session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &session{
		store:  ps,
		logger: logger,
		now:    time.Now,
	}
	s.apply(prefs)
	return s
}

// tick refreshes the live status only.
func (s *session) tick(t time.Time) {
	s.live = workcalc.ComputeLiveStatus(t, s.prefs)
}

// apply replaces the preferences and recomputes every derived value.
func (s *session) apply(p workcalc.Preferences) {
	s.prefs = p
	s.proj = workcalc.ProjectPreferences(p)
	s.tick(s.now())
}

// update applies p and returns a command persisting it.
func (s *session) update(p workcalc.Preferences) tea.Cmd {
	s.apply(p)
	return s.saveCmd(p)
}

func (s *session) saveCmd(p workcalc.Preferences) tea.Cmd {
	ps, logger := s.store, s.logger
	return func() tea.Msg {
		if ps == nil {
			return prefsSavedMsg{}
		}
		if err := ps.SavePreferences(p); err != nil {
			logger.Warn("Failed to save preferences", "error", err)
			return prefsSavedMsg{err: err}
		}
		logger.Debug("Preferences saved",
			"in_time", p.ClockIn.String(),
			"tea_break", p.TeaBreak,
			"lunch_break", p.LunchBreak,
			"planned_exit", p.PlannedExit.String(),
		)
		return prefsSavedMsg{}
	}
}
