package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredMigrations(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms, "the embedded migrations register at init")

	for i, m := range ms {
		assert.Positive(t, m.Version)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.UpScript)
		assert.NotEmpty(t, m.DownScript, "every up script has a down script")
		if i > 0 {
			assert.Greater(t, m.Version, ms[i-1].Version, "migrations are sorted by version")
		}
	}
}

func TestGetMigrationByVersion(t *testing.T) {
	first := GetMigrations()[0]

	got := GetMigrationByVersion(first.Version)
	require.NotNil(t, got)
	assert.Equal(t, first.Name, got.Name)

	assert.Nil(t, GetMigrationByVersion(999999))
}

func TestMigrationString(t *testing.T) {
	m := Migration{Version: 1, Name: "create_core_tables"}
	assert.Equal(t, "000001_create_core_tables", m.String())
}

func TestCoreTablesMigrationShape(t *testing.T) {
	m := GetMigrationByVersion(1)
	require.NotNil(t, m)

	up := m.UpScript
	for _, table := range []string{"users", "connections", "travel_plans", "notifications"} {
		assert.Contains(t, up, "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, up, "chk_connections_user_order")
	assert.Contains(t, up, "chk_connections_status")
	assert.Contains(t, up, "ON DELETE CASCADE")

	down := m.DownScript
	assert.True(t, strings.Index(down, "notifications") < strings.Index(down, "users"),
		"the down script drops dependents before users")
}

func TestValidateAppliedVersions(t *testing.T) {
	known := []Migration{{Version: 1}, {Version: 2}}

	assert.NoError(t, validateAppliedVersions(nil, known))
	assert.NoError(t, validateAppliedVersions([]int{1}, known))
	assert.NoError(t, validateAppliedVersions([]int{1, 2}, known))

	err := validateAppliedVersions([]int{1, 3}, known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 3")
}
