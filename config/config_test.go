package config

import (
	"path/filepath"
	"testing"
	"time"

	"studio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DB_DRIVER", "CORS_ORIGINS", "SESSION_TTL_HOURS", "SUBMIT_RATE_LIMIT", "LOGIN_RATE_LIMIT", "TRUSTED_PROXIES", "MYSQL_URL", "DATABASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.SubmitRateLimit)
	assert.Equal(t, 20, cfg.LoginRateLimit)
	assert.Nil(t, cfg.TrustedProxies, "no proxy is trusted unless configured")
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_DSN", "")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("POSTGRES_DSN", "host=localhost user=studio dbname=studio")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)

	t.Setenv("SESSION_TTL_HOURS", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestParseCorsOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseCorsOrigins(""))
	assert.Equal(t, []string{"*"}, parseCorsOrigins(" , "))
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, parseCorsOrigins("https://a.com, https://b.com,"))
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.10,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.TrustedProxies)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{DBUser: "studio", DBPass: "pw", DBHost: "db", DBPort: "3307", DBName: "studio_db"}
	dsn, err := cfg.MySQLDSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "studio:pw@tcp(db:3307)/studio_db")
	assert.Contains(t, dsn, "parseTime=true")

	cfg = &Config{MySQLURL: "mysql://u:p@host/app?tls=skip-verify"}
	dsn, err = cfg.MySQLDSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "u:p@tcp(host:3306)/app")
	assert.Contains(t, dsn, "tls=skip-verify")

	cfg = &Config{MySQLURL: "mysql://u:p@host:3306/"}
	_, err = cfg.MySQLDSN()
	assert.Error(t, err)

	cfg = &Config{MySQLURL: "u:p@tcp(host:3306)/app?parseTime=true"}
	dsn, err = cfg.MySQLDSN()
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(host:3306)/app?parseTime=true", dsn)
}

func TestSeedAdmin(t *testing.T) {
	db, err := OpenDatabase(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, SeedAdmin(db, "", ""))
	require.NoError(t, SeedAdmin(db, "admin", "secret"))
	require.NoError(t, SeedAdmin(db, "admin", "changed"))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.NotEqual(t, "secret", users[0].PasswordHash)
}
