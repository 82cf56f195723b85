package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"notes-saas-backend/internal/config"
	"notes-saas-backend/internal/logger"
)

// seedTenant is a tenant plus its two starter accounts. Every seeded user
// shares the same development password.
type seedTenant struct {
	name string
	slug string
}

const seedPassword = "password"

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	schemaPath := flag.String("schema", "migrations/001_init.sql", "Path to schema file")
	seed := flag.Bool("seed", true, "Seed development tenants and users after migrating")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Running database migrations...", "schema", *schemaPath)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	logger.Info("Schema applied")

	if *seed {
		if err := seedData(db); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		logger.Info("Seed data applied")
	}

	logger.Info("Migration completed successfully")
}

func seedData(db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tenants := []seedTenant{
		{name: "Acme", slug: "acme"},
		{name: "Globex", slug: "globex"},
	}

	for _, t := range tenants {
		var tenantID int32
		err := db.QueryRow(`
			INSERT INTO tenants (name, slug)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			t.name, t.slug,
		).Scan(&tenantID)
		if err != nil {
			return err
		}

		accounts := []struct {
			email string
			role  string
		}{
			{email: "admin@" + t.slug + ".test", role: "admin"},
			{email: "user@" + t.slug + ".test", role: "member"},
		}
		for _, a := range accounts {
			_, err := db.Exec(`
				INSERT INTO users (email, password_hash, role, tenant_id)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (email) DO NOTHING`,
				a.email, string(hash), a.role, tenantID,
			)
			if err != nil {
				return err
			}
		}
		logger.Info("Seeded tenant", "slug", t.slug)
	}

	return nil
}
