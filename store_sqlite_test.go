package daykeep

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.db")

	s := populated(t)
	require.NoError(t, SaveSQLiteStore(path, s))

	loaded, err := OpenSQLiteStore(path)
	require.NoError(t, err)

	require.Len(t, loaded.Tasks(), 1)
	task := loaded.Tasks()[0]
	assert.Equal(t, "water plants", task.Description)
	assert.Equal(t, DayOfWeekTask(time.Monday), task.Type)
	require.NotNil(t, task.DueDate)

	require.Len(t, loaded.Goals(), 1)
	assert.Equal(t, "read 12 books", loaded.Goals()[0].Title)

	require.Len(t, loaded.Entries(), 1)
	entry := loaded.Entries()[0]
	require.NotNil(t, entry.Recurrence)
	assert.Equal(t, Weekly, *entry.Recurrence)

	require.Len(t, loaded.BudgetItems(), 1)
	assert.Equal(t, s.BudgetItems()[0], loaded.BudgetItems()[0])

	require.Len(t, loaded.CryptoEntries(), 1)
	assert.Equal(t, s.CryptoEntries()[0], loaded.CryptoEntries()[0])

	assert.Equal(t, "Alex", loaded.ProfileName())
}

// Saving twice replaces the database content instead of accumulating.
func TestSQLiteSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.db")

	s := populated(t)
	require.NoError(t, SaveSQLiteStore(path, s))
	require.True(t, s.DeleteTask(s.Tasks()[0].ID))
	require.NoError(t, SaveSQLiteStore(path, s))

	loaded, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Tasks())
	assert.Len(t, loaded.Goals(), 1)
}

// A restored store keeps issuing fresh ids.
func TestSQLiteClaimsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.db")

	s := populated(t)
	require.NoError(t, SaveSQLiteStore(path, s))

	loaded, err := OpenSQLiteStore(path)
	require.NoError(t, err)

	next := loaded.CreateTask("fresh", nil, DailyTask())
	for _, task := range s.Tasks() {
		assert.NotEqual(t, task.ID, next.ID)
	}
	for _, goal := range s.Goals() {
		assert.NotEqual(t, goal.ID, next.ID)
	}
}
