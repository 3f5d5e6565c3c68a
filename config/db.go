package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"studio-backend/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLDSN builds the driver DSN either from MYSQL_URL/DATABASE_URL or from
// the discrete DB_* settings.
func (c *Config) MySQLDSN() (string, error) {
	if c.MySQLURL != "" {
		if strings.HasPrefix(c.MySQLURL, "mysql://") {
			return mysqlDSNFromURL(c.MySQLURL)
		}
		if _, err := mysqldriver.ParseDSN(c.MySQLURL); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return c.MySQLURL, nil
	}

	mc := mysqldriver.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPass
	mc.Net = "tcp"
	mc.Addr = c.DBHost + ":" + c.DBPort
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN(), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", errors.New("mysql url missing database name")
	}
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	mc := mysqldriver.NewConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Net = "tcp"
	mc.Addr = u.Hostname() + ":" + port
	mc.DBName = dbName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		if len(values) > 0 && key != "parseTime" && key != "loc" {
			mc.Params[key] = values[0]
		}
	}
	return mc.FormatDSN(), nil
}

// Dialector picks the gorm dialector for the configured driver.
func (c *Config) Dialector() (gorm.Dialector, error) {
	switch c.DBDriver {
	case "postgres":
		return postgres.Open(c.PostgresDSN), nil
	case "sqlite":
		return sqlite.Open(c.SQLitePath), nil
	default:
		dsn, err := c.MySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	}
}

// gormWriter forwards gorm's logger output to zerolog.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	log.Warn().Str("component", "gorm").Msg(fmt.Sprintf(format, args...))
}

// GormLogger reports slow queries and errors only.
func GormLogger() logger.Interface {
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// OpenDatabase opens the store and migrates every model.
func OpenDatabase(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// ConnectDatabase opens the configured database, tunes the pool, migrates and
// seeds the admin account.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := OpenDatabase(dialector)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedAdmin creates the admin account when credentials are configured and the
// username is not taken yet. An existing account is left untouched.
func SeedAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		log.Info().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set; skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}
	if err := db.Create(&models.User{Username: username, PasswordHash: string(hash)}).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info().Str("username", username).Msg("default admin seeded")
	return nil
}
