package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/workday/internal/workcalc"
)

func sampleSnapshot() Snapshot {
	now := time.Date(2026, time.March, 9, 19, 0, 0, 0, time.UTC)
	p := workcalc.DefaultPreferences()
	p.PlannedExit = workcalc.MustClock("17:30")
	return Take(now, p)
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, ToCSV(sampleSnapshot(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	got := make(map[string]string, len(records))
	for _, r := range records {
		require.Len(t, r, 2)
		got[r[0]] = r[1]
	}
	assert.Equal(t, "Value", got["Field"])
	assert.Equal(t, "10:00", got["Office in"])
	assert.Equal(t, "540.0000", got["Gross (min)"])
	assert.Equal(t, "overtime", got["Status"])
	assert.Equal(t, "0hr 43min", got["Balance"])
	assert.Equal(t, "18:17", got["Leave at"])
	assert.Equal(t, "short", got["Projection"])
	assert.Equal(t, "0hr 47min", got["Projection balance"])
}

func TestToCSVInvalidPath(t *testing.T) {
	err := ToCSV(sampleSnapshot(), "/nonexistent/dir/test.csv")
	assert.Error(t, err)
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, ToJSON(sampleSnapshot(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got jsonExport
	require.NoError(t, json.Unmarshal(data, &got))

	assert.NotEmpty(t, got.ExportedAt)
	assert.Equal(t, "10:00", got.Preferences.InTime)
	assert.Equal(t, 17, got.Preferences.LunchBreak)
	assert.Equal(t, 17, got.Live.TotalBreakMinutes)
	assert.Equal(t, 523.0, got.Live.NetMinutes)
	assert.Equal(t, "overtime", got.Live.Status)
	assert.Equal(t, "17:30", got.Projection.PlannedExit)
	assert.False(t, got.Projection.NextDay)
	assert.Equal(t, 450, got.Projection.GrossMinutes)
	assert.Equal(t, "short", got.Projection.Status)
}

func TestToJSONInvalidPath(t *testing.T) {
	err := ToJSON(sampleSnapshot(), "/nonexistent/dir/test.json")
	assert.Error(t, err)
}

func TestTakeBeforeClockIn(t *testing.T) {
	now := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	snap := Take(now, workcalc.DefaultPreferences())
	assert.Zero(t, snap.Live.GrossMinutes)
	assert.Equal(t, "remaining", liveState(snap.Live))
	assert.Equal(t, "overtime", projectionState(snap.Projection))
}
