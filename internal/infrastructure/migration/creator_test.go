package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add stores table", "add_stores_table"},
		{"Add-Stores-Table", "add_stores_table"},
		{"ADD_STORES_TABLE", "add_stores_table"},
		{"add__stores__table", "add_stores_table"},
		{"Seed Accounts 001", "seed_accounts_001"},
		{"   spaces   ", "spaces"},
		{"ledger!@#entries", "ledgerentries"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "add business days table")
	require.NoError(t, err)
	require.NotNil(t, mf)

	// Version is a YYYYMMDDHHMMSS timestamp
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)
	assert.Contains(t, upBase, "add_business_days_table")

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "add business days table")

	downContent, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "revert")
}

func TestCreateMigrationMakesDirectory(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(tmpDir, "init")
	require.NoError(t, err)

	_, err = os.Stat(mf.UpPath)
	assert.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	tmpDir := t.TempDir()

	names := []string{
		"20260101000002_add_orders",
		"20260101000001_init_schema",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name+".up.sql"), []byte("-- up\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name+".down.sql"), []byte("-- down\n"), 0644))
	}
	// Unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("x"), 0644))

	migrations, err := ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"20260101000001_init_schema",
		"20260101000002_add_orders",
	}, migrations)
}

func TestListMigrationsMissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
