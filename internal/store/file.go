package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sadopc/workday/internal/workcalc"
)

// File stores preferences as a single JSON object:
//
//	{"in_time": "HH:MM", "tea_break": 0, "lunch_break": 17, "planned_exit": "HH:MM"}
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

type fileRecord struct {
	InTime      string `json:"in_time"`
	TeaBreak    int    `json:"tea_break"`
	LunchBreak  int    `json:"lunch_break"`
	PlannedExit string `json:"planned_exit"`
}

// LoadPreferences reads the file. A missing file yields defaults with
// StatusMissing; a file that is not a JSON object yields StatusCorrupt;
// individual bad or absent fields default on their own.
func (f *File) LoadPreferences() LoadResult {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadResult{
			Preferences: workcalc.DefaultPreferences(),
			Status:      StatusMissing,
			Fallbacks:   append([]string(nil), allKeys...),
		}
	}
	if err != nil {
		return corrupt(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return corrupt(fmt.Errorf("parse %s: %w", f.path, err))
	}
	if raw == nil {
		return corrupt(fmt.Errorf("parse %s: not an object", f.path))
	}

	m := newMerger()
	decodeClock := func(key string, dst *workcalc.Clock) {
		v, ok := raw[key]
		if !ok {
			return
		}
		var s string
		if err := strictUnmarshal(v, &s); err != nil {
			m.fail(key, err)
			return
		}
		m.setClock(key, dst, s)
	}
	decodeBreak := func(key string, dst *int) {
		v, ok := raw[key]
		if !ok {
			return
		}
		var n int
		if err := strictUnmarshal(v, &n); err != nil {
			m.fail(key, err)
			return
		}
		m.setBreak(key, dst, n)
	}

	decodeClock(KeyInTime, &m.prefs.ClockIn)
	decodeBreak(KeyTeaBreak, &m.prefs.TeaBreak)
	decodeBreak(KeyLunchBreak, &m.prefs.LunchBreak)
	decodeClock(KeyPlannedExit, &m.prefs.PlannedExit)
	return m.result()
}

// strictUnmarshal rejects JSON null, which encoding/json would accept as a
// zero value.
func strictUnmarshal(data json.RawMessage, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("null value")
	}
	return json.Unmarshal(data, v)
}

// SavePreferences overwrites the file with p. The write goes through a
// temporary file in the same directory and a rename.
func (f *File) SavePreferences(p workcalc.Preferences) error {
	rec := fileRecord{
		InTime:      p.ClockIn.String(),
		TeaBreak:    p.TeaBreak,
		LunchBreak:  p.LunchBreak,
		PlannedExit: p.PlannedExit.String(),
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal json: %w", ErrWrite, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %w", ErrWrite, err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrWrite, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrWrite, tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%w: rename into %s: %w", ErrWrite, f.path, err)
	}
	return nil
}

// DefaultFilePath returns ~/.config/workday/tracker_config.json
func DefaultFilePath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "workday", "tracker_config.json"), nil
}
