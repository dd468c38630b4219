package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/saradorri/gamecatalog/internal/config"
	"github.com/spf13/viper"
)

func main() {
	var (
		configPath     = flag.String("config", "./config", "config directory")
		env            = flag.String("env", config.GetEnvironment(), "environment the config file is named for")
		action         = flag.String("action", "up", "up or down")
		migrationsPath = flag.String("migrations", "./migrations", "directory holding the catalog schema migrations")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	found, err := checkMigrationsDir(*migrationsPath)
	if err != nil {
		log.Fatalf("Failed to read migrations: %v", err)
	}
	log.Printf("Applying from %d migration files in %s", found, *migrationsPath)

	m, err := migrate.New("file://"+*migrationsPath, migrationURL(cfg.Database))
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate up: %v", err)
		}
		log.Println("Catalog schema migrated up")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate down: %v", err)
		}
		log.Println("Catalog schema migrated down")
	default:
		log.Fatalf("Unknown action: %s. Valid actions: up, down", *action)
	}
}

// loadConfig reads the environment's config file with the same environment
// variable overrides the API server honors.
func loadConfig(configPath, env string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GAME_CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &cfg, nil
}

// migrationURL renders the connection URL golang-migrate's postgres driver
// expects, escaping credentials that would break a Sprintf-built URL.
func migrationURL(db config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     db.Name,
		RawQuery: "sslmode=" + db.SSLMode,
	}
	return u.String()
}

// checkMigrationsDir reports how many migration files the directory holds,
// failing when there is nothing to apply.
func checkMigrationsDir(migrationsPath string) (int, error) {
	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no migration files found in directory: %s", migrationsPath)
	}
	return len(files), nil
}
