package postgres_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/direcional-api/internal/infrastructure/postgres"
	migrations "github.com/jhoicas/direcional-api/migrations/postgres"
)

func TestParseMigrations_OrdenaPorVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/0002_indices.sql": {Data: []byte("CREATE INDEX x ON t (c);")},
		"sql/0001_init.sql":    {Data: []byte("CREATE TABLE t (c INT);")},
		"sql/README.md":        {Data: []byte("ignorado")},
	}

	list, err := postgres.NewMigrator(fsys, "sql").ParseMigrations()

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Version)
	assert.Equal(t, "init", list[0].Name)
	assert.Equal(t, 2, list[1].Version)
}

func TestParseMigrations_Embebidas(t *testing.T) {
	list, err := postgres.NewMigrator(migrations.FS, migrations.Dir).ParseMigrations()

	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Contains(t, list[0].SQL, "CREATE TABLE IF NOT EXISTS units")
	assert.Contains(t, list[0].SQL, "ux_reservations_active_unit")
}
