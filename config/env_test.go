package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	assert.Equal(t, "postgres", DatabaseDriver())
	assert.Equal(t, defaultPostgresDSN, DatabaseDSN())

	t.Setenv("DB_DRIVER", "oracle")
	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, defaultSQLiteDSN, DatabaseDSN())

	t.Setenv("DATABASE_DSN", "file:test.db")
	assert.Equal(t, "file:test.db", DatabaseDSN())
}

func TestDurations(t *testing.T) {
	t.Setenv("JWT_TTL", "90m")
	assert.Equal(t, 90*time.Minute, JWTTTL())

	t.Setenv("JWT_REFRESH_TTL", "nonsense")
	assert.Equal(t, 7*24*time.Hour, JWTRefreshTTL())
}

func TestMaxBodyBytesFallback(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "0")
	assert.Equal(t, int64(4<<20), MaxBodyBytes())

	t.Setenv("MAX_BODY_BYTES", "1024")
	assert.Equal(t, int64(1024), MaxBodyBytes())
}

func TestTokenStoreIsLowerCased(t *testing.T) {
	t.Setenv("TOKEN_STORE", "Redis")
	assert.Equal(t, "redis", TokenStore())
}

func TestLoadFromFilesMergesJSONAndEnv(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"EXPORT_LABEL":"json","EXPORT_OWNER":"ops"}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("EXPORT_LABEL=dotenv\n"), 0o644))

	require.NoError(t, loadFromFiles(jsonPath, envPath))
	assert.Equal(t, "dotenv", Get("EXPORT_LABEL", ""))
	assert.Equal(t, "ops", Get("EXPORT_OWNER", ""))
}

func TestMissingFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadFromFiles(filepath.Join(dir, "none.json"), filepath.Join(dir, ".env")))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	assert.True(t, IsProduction())
	t.Setenv("APP_ENV", "local")
	assert.False(t, IsProduction())
}
