package migration

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_SortsAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__add_index.sql":   {Data: []byte("CREATE INDEX x ON t (a);")},
		"V1__init.sql":        {Data: []byte("  CREATE TABLE t (a INT);  \n")},
		"README.md":           {Data: []byte("ignored")},
		"v3__lowercase.sql":   {Data: []byte("ignored")},
		"nested/V9__skip.sql": {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 2)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (a INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoadMigrations_RejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")

	_, err = loadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	assert.ErrorContains(t, err, "empty migration file")
}

func TestEmbeddedMigrations(t *testing.T) {
	migs, err := loadMigrations(Runner{}.source())
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, "create_analyses", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS analyses")
}
