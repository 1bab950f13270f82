package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	migs, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migs, 3)

	for i, m := range migs {
		assert.Equal(t, int64(i+1), m.Version)
		assert.NotEmpty(t, m.SQL)
		assert.Len(t, m.Checksum, 64)
	}
	assert.Contains(t, migs[1].SQL, "candidates_email_job_key")
}

func TestLoadMigrations_OrderAndFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"m/V10__later.sql": {Data: []byte("SELECT 10;")},
		"m/V2__early.sql":  {Data: []byte("SELECT 2;")},
		"m/README.md":      {Data: []byte("ignored")},
		"m/v3__lower.sql":  {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, "early", migs[0].Name)
	assert.Equal(t, "later", migs[1].Name)
}

func TestLoadMigrations_Errors(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{"m/V1__a.sql": {Data: []byte("  \n")}}, "m")
	assert.ErrorContains(t, err, "empty migration file")

	_, err = loadMigrations(fstest.MapFS{
		"m/V1__a.sql":  {Data: []byte("SELECT 1;")},
		"m/V01__b.sql": {Data: []byte("SELECT 1;")},
	}, "m")
	assert.ErrorContains(t, err, "duplicate migration version")
}
