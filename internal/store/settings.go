package store

import (
	"fmt"
	"strconv"

	"github.com/sadopc/workday/internal/workcalc"
)

type Setting struct {
	Key   string
	Value string
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// LoadPreferences reads the preference rows, merging per field over defaults.
func (s *Store) LoadPreferences() LoadResult {
	settings, err := s.GetAllSettings()
	if err != nil {
		return corrupt(err)
	}
	values := make(map[string]string, len(settings))
	for _, st := range settings {
		values[st.Key] = st.Value
	}

	m := newMerger()
	if v, ok := values[KeyInTime]; ok {
		m.setClock(KeyInTime, &m.prefs.ClockIn, v)
	}
	if v, ok := values[KeyTeaBreak]; ok {
		m.setBreakText(KeyTeaBreak, &m.prefs.TeaBreak, v)
	}
	if v, ok := values[KeyLunchBreak]; ok {
		m.setBreakText(KeyLunchBreak, &m.prefs.LunchBreak, v)
	}
	if v, ok := values[KeyPlannedExit]; ok {
		m.setClock(KeyPlannedExit, &m.prefs.PlannedExit, v)
	}
	return m.result()
}

// SavePreferences replaces all four preference rows in one transaction.
func (s *Store) SavePreferences(p workcalc.Preferences) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin tx: %w", ErrWrite, err)
	}
	defer tx.Rollback()

	for _, kv := range settingsFor(p) {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			kv.Key, kv.Value,
		); err != nil {
			return fmt.Errorf("%w: set %q: %w", ErrWrite, kv.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit tx: %w", ErrWrite, err)
	}
	return nil
}

func settingsFor(p workcalc.Preferences) []Setting {
	return []Setting{
		{Key: KeyInTime, Value: p.ClockIn.String()},
		{Key: KeyTeaBreak, Value: strconv.Itoa(p.TeaBreak)},
		{Key: KeyLunchBreak, Value: strconv.Itoa(p.LunchBreak)},
		{Key: KeyPlannedExit, Value: p.PlannedExit.String()},
	}
}

func defaultSettings() []Setting {
	return settingsFor(workcalc.DefaultPreferences())
}
