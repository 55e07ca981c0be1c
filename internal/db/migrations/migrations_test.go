package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsUpAndDown(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestInitialSchema_Constraints(t *testing.T) {
	body, err := fs.ReadFile(FS, "00001_initial_schema.sql")
	require.NoError(t, err)
	schema := string(body)

	for _, table := range []string{"roles", "claims", "users", "user_claims"} {
		assert.Contains(t, schema, "CREATE TABLE "+table+" (")
	}
	assert.Contains(t, schema, "UNIQUE KEY ux_users_email (email)")
	assert.Contains(t, schema, "FOREIGN KEY (role_id) REFERENCES roles (id)")
	assert.True(t, strings.Contains(schema, "PRIMARY KEY (user_id, claim_id)"))
}
