package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ariebrainware/hospital-api/util"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName           string        `mapstructure:"APPNAME"`
	AppEnv            string        `mapstructure:"APPENV"`
	AppPort           uint16        `mapstructure:"APPPORT"`
	GinMode           string        `mapstructure:"GINMODE"`
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBHost            string        `mapstructure:"DBHOST"`
	DBPort            uint16        `mapstructure:"DBPORT"`
	DBName            string        `mapstructure:"DBNAME"`
	DBUSER            string        `mapstructure:"DBUSER"`
	DBPass            string        `mapstructure:"DBPASS"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	RateLimit         int           `mapstructure:"RATE_LIMIT"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	CORSOrigins       []string      `mapstructure:"-"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	GeoIPDBPath       string        `mapstructure:"GEOIP_DB_PATH"`
	RequestLogPersist bool          `mapstructure:"REQUEST_LOG_PERSIST"`
}

// IsTest reports whether the process runs under APPENV=test.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

var config *Config
var once sync.Once

var defaults = map[string]interface{}{
	"APPNAME":             "hospital-api",
	"APPENV":              "development",
	"APPPORT":             8080,
	"GINMODE":             "debug",
	"DB_DRIVER":           "mysql",
	"DBHOST":              "localhost",
	"DBPORT":              3306,
	"DBNAME":              "hospital",
	"DBUSER":              "root",
	"DBPASS":              "",
	"REDIS_ADDR":          "",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"RATE_LIMIT":          60,
	"RATE_LIMIT_WINDOW":   "1m",
	"CORS_ORIGINS":        "*",
	"LOG_LEVEL":           "info",
	"GEOIP_DB_PATH":       "",
	"REQUEST_LOG_PERSIST": false,
}

// LoadConfig loads the environment variables, optionally from a .env file,
// and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			util.Logger().Debug().Err(err).Msg("no .env file loaded, using process environment")
		}

		cfg, err := load()
		if err != nil {
			util.Logger().Error().Err(err).Msg("invalid configuration, falling back to defaults")
			cfg = &Config{AppName: "hospital-api", AppEnv: "development", AppPort: 8080, DBDriver: "mysql"}
		}
		config = cfg
	})
	return config
}

func load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ConnectDB opens the database selected by the configuration: an in-memory
// sqlite database under APPENV=test, otherwise sqlite, postgres or mysql
// according to DB_DRIVER.
func ConnectDB() (*gorm.DB, error) {
	cfg := LoadConfig()

	db, err := gorm.Open(dialector(cfg), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driverName(cfg), err)
	}
	if driverName(cfg) == "sqlite" {
		// an in-memory database only lives as long as its connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func driverName(cfg *Config) string {
	if cfg.IsTest() {
		return "sqlite"
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
		return cfg.DBDriver
	}
	return "mysql"
}

func dialector(cfg *Config) gorm.Dialector {
	switch {
	case cfg.IsTest():
		return sqlite.Open("file::memory:")
	case driverName(cfg) == "sqlite":
		return sqlite.Open(cfg.DBName)
	case driverName(cfg) == "postgres":
		return postgres.Open(postgresDSN(cfg))
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return mysql.Open(dsn)
}

// postgresDSN pins the session to UTC so timestamps scan back in the zone
// they were written in.
func postgresDSN(cfg *Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUSER, cfg.DBPass, cfg.DBName)
}
