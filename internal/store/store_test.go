package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/workday/internal/workcalc"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeFile(t *testing.T, content string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewFile(path)
}

func samplePrefs() workcalc.Preferences {
	return workcalc.Preferences{
		ClockIn:     workcalc.MustClock("09:15"),
		TeaBreak:    10,
		LunchBreak:  45,
		PlannedExit: workcalc.MustClock("18:30"),
	}
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/workday.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SavePreferences(samplePrefs()); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: migration must not reseed over saved values.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	res := s2.LoadPreferences()
	if res.Preferences != samplePrefs() {
		t.Fatalf("prefs after reopen = %+v", res.Preferences)
	}
}

func TestDefaultPaths(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "workday.db" {
		t.Fatalf("unexpected db path %q", path)
	}
	path, err = DefaultFilePath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "tracker_config.json" {
		t.Fatalf("unexpected file path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// SQLite settings
// ============================================================

func TestSeededDefaults(t *testing.T) {
	s := newTestStore(t)
	res := s.LoadPreferences()
	if res.Status != StatusLoaded {
		t.Fatalf("status = %v, want loaded", res.Status)
	}
	if res.Preferences != workcalc.DefaultPreferences() {
		t.Fatalf("prefs = %+v", res.Preferences)
	}
	v, err := s.GetSetting(KeyLunchBreak)
	if err != nil || v != "17" {
		t.Fatalf("lunch_break = %q, %v", v, err)
	}
}

func TestGetAllSettings(t *testing.T) {
	s := newTestStore(t)
	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 settings, got %d", len(all))
	}
	// ordered by key
	if all[0].Key != KeyInTime || all[3].Key != KeyTeaBreak {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetSetting("nope"); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePreferences(samplePrefs()); err != nil {
		t.Fatal(err)
	}
	res := s.LoadPreferences()
	if res.Status != StatusLoaded || res.Err != nil {
		t.Fatalf("status = %v, err = %v", res.Status, res.Err)
	}
	if res.Preferences != samplePrefs() {
		t.Fatalf("prefs = %+v", res.Preferences)
	}
}

func TestStorePerFieldFallback(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(KeyInTime, "08:45")
	s.SetSetting(KeyTeaBreak, "lots")
	s.SetSetting(KeyLunchBreak, "120")

	res := s.LoadPreferences()
	if res.Status != StatusPartial {
		t.Fatalf("status = %v, want partial", res.Status)
	}
	if !errors.Is(res.Err, ErrRead) {
		t.Fatalf("err = %v, want ErrRead", res.Err)
	}
	p := res.Preferences
	if p.ClockIn != workcalc.MustClock("08:45") {
		t.Fatalf("clock in = %v", p.ClockIn)
	}
	if p.TeaBreak != 0 || p.LunchBreak != 17 {
		t.Fatalf("breaks = %d/%d, want defaults", p.TeaBreak, p.LunchBreak)
	}
	if len(res.Fallbacks) != 2 {
		t.Fatalf("fallbacks = %v", res.Fallbacks)
	}
}

func TestStoreAllRowsDeleted(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.db.Exec(`DELETE FROM settings`); err != nil {
		t.Fatal(err)
	}
	res, err := LoadOrInit(s)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusMissing {
		t.Fatalf("status = %v, want missing", res.Status)
	}
	if again := s.LoadPreferences(); again.Status != StatusLoaded {
		t.Fatalf("after init status = %v", again.Status)
	}
}

func TestStoreClosedIsCorrupt(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	res := s.LoadPreferences()
	if res.Status != StatusCorrupt || !errors.Is(res.Err, ErrRead) {
		t.Fatalf("status = %v, err = %v", res.Status, res.Err)
	}
	if res.Preferences != workcalc.DefaultPreferences() {
		t.Fatal("corrupt load should return defaults")
	}
	if err := s.SavePreferences(samplePrefs()); !errors.Is(err, ErrWrite) {
		t.Fatalf("save err = %v, want ErrWrite", err)
	}
}

// ============================================================
// JSON file
// ============================================================

func TestFileMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.json"))
	res := f.LoadPreferences()
	if res.Status != StatusMissing || res.Err != nil {
		t.Fatalf("status = %v, err = %v", res.Status, res.Err)
	}
	if res.Preferences != workcalc.DefaultPreferences() {
		t.Fatalf("prefs = %+v", res.Preferences)
	}
	if !res.Defaulted() {
		t.Fatal("missing file should be defaulted")
	}
}

func TestFileOnlyTeaBreak(t *testing.T) {
	f := writeFile(t, `{"tea_break": 30}`)
	res := f.LoadPreferences()

	want := workcalc.DefaultPreferences()
	want.TeaBreak = 30
	if res.Preferences != want {
		t.Fatalf("prefs = %+v, want %+v", res.Preferences, want)
	}
	if res.Status != StatusPartial {
		t.Fatalf("status = %v, want partial", res.Status)
	}
	if res.Err != nil {
		t.Fatalf("absent fields are not errors: %v", res.Err)
	}
	if len(res.Fallbacks) != 3 {
		t.Fatalf("fallbacks = %v", res.Fallbacks)
	}
}

func TestFileCleanLoad(t *testing.T) {
	f := writeFile(t, `{"in_time":"09:15","tea_break":10,"lunch_break":45,"planned_exit":"18:30"}`)
	res := f.LoadPreferences()
	if res.Status != StatusLoaded || res.Defaulted() {
		t.Fatalf("status = %v", res.Status)
	}
	if res.Preferences != samplePrefs() {
		t.Fatalf("prefs = %+v", res.Preferences)
	}
}

func TestFileCorrupt(t *testing.T) {
	for _, content := range []string{"", "{", "[1,2]", `"x"`, "null"} {
		f := writeFile(t, content)
		res := f.LoadPreferences()
		if res.Status != StatusCorrupt {
			t.Fatalf("%q: status = %v, want corrupt", content, res.Status)
		}
		if !errors.Is(res.Err, ErrRead) {
			t.Fatalf("%q: err = %v", content, res.Err)
		}
		if res.Preferences != workcalc.DefaultPreferences() {
			t.Fatalf("%q: prefs = %+v", content, res.Preferences)
		}
	}
}

func TestFileBadFields(t *testing.T) {
	f := writeFile(t, `{"in_time":"25:00","tea_break":"ten","lunch_break":null,"planned_exit":"20:15"}`)
	res := f.LoadPreferences()
	if res.Status != StatusPartial {
		t.Fatalf("status = %v", res.Status)
	}
	if !errors.Is(res.Err, ErrRead) {
		t.Fatalf("err = %v", res.Err)
	}
	want := workcalc.DefaultPreferences()
	want.PlannedExit = workcalc.MustClock("20:15")
	if res.Preferences != want {
		t.Fatalf("prefs = %+v, want %+v", res.Preferences, want)
	}
}

func TestFileBreakOutOfRange(t *testing.T) {
	f := writeFile(t, `{"tea_break": 91, "lunch_break": 12.5}`)
	res := f.LoadPreferences()
	if res.Preferences.TeaBreak != 0 || res.Preferences.LunchBreak != 17 {
		t.Fatalf("prefs = %+v", res.Preferences)
	}
}

func TestFileSaveOverwrites(t *testing.T) {
	f := writeFile(t, `{"tea_break": 30, "extra": true}`)
	if err := f.SavePreferences(samplePrefs()); err != nil {
		t.Fatal(err)
	}
	res := f.LoadPreferences()
	if res.Status != StatusLoaded || res.Preferences != samplePrefs() {
		t.Fatalf("status = %v, prefs = %+v", res.Status, res.Preferences)
	}
	entries, _ := os.ReadDir(filepath.Dir(f.Path()))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFileSaveCreatesDirs(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "a", "b", "prefs.json"))
	if err := f.SavePreferences(workcalc.DefaultPreferences()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(f.Path()); err != nil {
		t.Fatal(err)
	}
}

func TestFileSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f := NewFile(filepath.Join(blocker, "prefs.json"))
	if err := f.SavePreferences(samplePrefs()); !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
}

func TestLoadOrInitCreatesFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "prefs.json"))
	res, err := LoadOrInit(f)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusMissing {
		t.Fatalf("status = %v", res.Status)
	}
	if again := f.LoadPreferences(); again.Status != StatusLoaded {
		t.Fatalf("file not created: %v", again.Status)
	}
}

func TestLoadOrInitLeavesExisting(t *testing.T) {
	f := writeFile(t, `{"tea_break": 30}`)
	res, err := LoadOrInit(f)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusPartial {
		t.Fatalf("status = %v", res.Status)
	}
	data, _ := os.ReadFile(f.Path())
	if string(data) != `{"tea_break": 30}` {
		t.Fatalf("file rewritten: %s", data)
	}
}

func TestStatusString(t *testing.T) {
	if StatusPartial.String() != "partial" || Status(42).String() != "unknown" {
		t.Fatal("unexpected status strings")
	}
}
