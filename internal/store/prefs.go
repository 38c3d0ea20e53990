// Package store persists the tracker preferences. Two backends exist: a JSON
// file and a SQLite settings table. Loading never fails; unusable storage
// degrades to defaults and the LoadResult says which.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sadopc/workday/internal/workcalc"
)

// Storage keys, shared by both backends.
const (
	KeyInTime      = "in_time"
	KeyTeaBreak    = "tea_break"
	KeyLunchBreak  = "lunch_break"
	KeyPlannedExit = "planned_exit"
)

var allKeys = []string{KeyInTime, KeyTeaBreak, KeyLunchBreak, KeyPlannedExit}

var (
	// ErrRead marks storage that was present but unreadable or malformed.
	ErrRead = errors.New("read preferences")
	// ErrWrite marks a failed save.
	ErrWrite = errors.New("write preferences")
)

// Status describes how a LoadResult was obtained.
type Status int

const (
	StatusLoaded  Status = iota // every field came from storage
	StatusMissing               // nothing stored yet
	StatusPartial               // some fields fell back to defaults
	StatusCorrupt               // storage unreadable, all defaults
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusMissing:
		return "missing"
	case StatusPartial:
		return "partial"
	case StatusCorrupt:
		return "corrupt"
	}
	return "unknown"
}

// LoadResult always carries a usable Preferences value.
type LoadResult struct {
	Preferences workcalc.Preferences
	Status      Status
	Fallbacks   []string // keys that took their default
	Err         error    // cause of any fallback other than absence; wraps ErrRead
}

// Defaulted reports whether any field came from the defaults.
func (r LoadResult) Defaulted() bool {
	return r.Status != StatusLoaded
}

// PreferencesStore is implemented by File and Store.
type PreferencesStore interface {
	LoadPreferences() LoadResult
	SavePreferences(workcalc.Preferences) error
}

// LoadOrInit loads preferences and, when nothing is stored yet, persists the
// defaults. The returned error only reports that initial write; the result is
// usable either way.
func LoadOrInit(ps PreferencesStore) (LoadResult, error) {
	res := ps.LoadPreferences()
	if res.Status != StatusMissing {
		return res, nil
	}
	return res, ps.SavePreferences(res.Preferences)
}

func corrupt(cause error) LoadResult {
	return LoadResult{
		Preferences: workcalc.DefaultPreferences(),
		Status:      StatusCorrupt,
		Fallbacks:   append([]string(nil), allKeys...),
		Err:         fmt.Errorf("%w: %w", ErrRead, cause),
	}
}

// merger applies stored fields over the defaults one at a time.
type merger struct {
	prefs   workcalc.Preferences
	applied map[string]bool
	errs    []error
}

func newMerger() *merger {
	return &merger{
		prefs:   workcalc.DefaultPreferences(),
		applied: make(map[string]bool, len(allKeys)),
	}
}

func (m *merger) setClock(key string, dst *workcalc.Clock, text string) {
	c, err := workcalc.ParseClock(text)
	if err != nil {
		m.fail(key, err)
		return
	}
	*dst = c
	m.applied[key] = true
}

func (m *merger) setBreak(key string, dst *int, minutes int) {
	if err := workcalc.ValidateBreak(minutes); err != nil {
		m.fail(key, err)
		return
	}
	*dst = minutes
	m.applied[key] = true
}

func (m *merger) setBreakText(key string, dst *int, text string) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.fail(key, err)
		return
	}
	m.setBreak(key, dst, n)
}

func (m *merger) fail(key string, err error) {
	m.errs = append(m.errs, fmt.Errorf("%s: %w", key, err))
}

func (m *merger) result() LoadResult {
	res := LoadResult{Preferences: m.prefs}
	for _, k := range allKeys {
		if !m.applied[k] {
			res.Fallbacks = append(res.Fallbacks, k)
		}
	}
	switch {
	case len(res.Fallbacks) == 0:
		res.Status = StatusLoaded
	case len(res.Fallbacks) == len(allKeys) && len(m.errs) == 0:
		res.Status = StatusMissing
	default:
		res.Status = StatusPartial
	}
	if len(m.errs) > 0 {
		res.Err = fmt.Errorf("%w: %w", ErrRead, errors.Join(m.errs...))
	}
	return res
}
