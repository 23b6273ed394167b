package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-lookup/internal/weather"
)

func newTestPreferenceStore(t *testing.T) *SQLPreferenceStore {
	t.Helper()
	s, err := OpenPreferenceStore(context.Background(), SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPreferenceStore_UnknownSessionIsNil(t *testing.T) {
	s := newTestPreferenceStore(t)

	prefs, err := s.GetUserPreferences(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestPreferenceStore_AddCityKeepsOrderAndSetSemantics(t *testing.T) {
	ctx := context.Background()
	s := newTestPreferenceStore(t)

	_, err := s.AddCity(ctx, "session-1", "London")
	require.NoError(t, err)
	_, err = s.AddCity(ctx, "session-1", "  Paris ")
	require.NoError(t, err)
	prefs, err := s.AddCity(ctx, "session-1", "LONDON")
	require.NoError(t, err)

	assert.Equal(t, "session-1", prefs.SessionID)
	assert.Equal(t, []string{"london", "paris"}, prefs.Cities)

	other, err := s.GetUserPreferences(ctx, "session-2")
	require.NoError(t, err)
	assert.Nil(t, other, "sessions are isolated")
}

func TestPreferenceStore_RemoveCity(t *testing.T) {
	ctx := context.Background()
	s := newTestPreferenceStore(t)

	_, err := s.RemoveCity(ctx, "ghost", "london")
	assert.True(t, errors.Is(err, weather.ErrNotFound), "unknown session")

	_, err = s.AddCity(ctx, "s", "london")
	require.NoError(t, err)
	_, err = s.AddCity(ctx, "s", "tokyo")
	require.NoError(t, err)

	_, err = s.RemoveCity(ctx, "s", "berlin")
	assert.True(t, errors.Is(err, weather.ErrNotFound), "unknown city")

	prefs, err := s.RemoveCity(ctx, "s", "London")
	require.NoError(t, err)
	assert.Equal(t, []string{"tokyo"}, prefs.Cities)

	prefs, err = s.RemoveCity(ctx, "s", "tokyo")
	require.NoError(t, err)
	assert.Empty(t, prefs.Cities)
}

func TestPreferenceStore_Validation(t *testing.T) {
	ctx := context.Background()
	s := newTestPreferenceStore(t)

	_, err := s.AddCity(ctx, "", "london")
	assert.Equal(t, weather.KindValidation, weather.KindOf(err))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, err = s.AddCity(ctx, "s", string(long))
	assert.Equal(t, weather.KindValidation, weather.KindOf(err))
}

func TestOpenPreferenceStore_UnknownBackend(t *testing.T) {
	_, err := OpenPreferenceStore(context.Background(), Backend("oracle"), "")
	assert.Error(t, err)
}

func TestBind_PostgresPlaceholders(t *testing.T) {
	s := &SQLPreferenceStore{backend: PostgreSQLBackend}
	assert.Equal(t, "a = $1 AND b = $2", s.bind("a = ? AND b = ?"))

	s.backend = MySQLBackend
	assert.Equal(t, "a = ? AND b = ?", s.bind("a = ? AND b = ?"))
}
