package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS organizations (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			org_number VARCHAR(20) NOT NULL DEFAULT '',
			onboarding_status VARCHAR(20) NOT NULL DEFAULT 'not_started',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			organization_id UUID NOT NULL REFERENCES organizations(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS organization_modules (
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			module VARCHAR(50) NOT NULL,
			enabled_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (organization_id, module)
		)`,

		`CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			unit VARCHAR(20) NOT NULL,
			cost_per_unit NUMERIC(12,4) NOT NULL DEFAULT 0,
			supplier VARCHAR(255) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			servings INT NOT NULL DEFAULT 1,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			ingredient_id UUID NOT NULL,
			quantity NUMERIC(12,4) NOT NULL,
			unit VARCHAR(20) NOT NULL,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (recipe_id, ingredient_id)
		)`,

		`CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			selling_price NUMERIC(12,2) NOT NULL,
			recipe_id UUID NULL REFERENCES recipes(id) ON DELETE SET NULL,
			target_food_cost_percentage NUMERIC(5,2) NOT NULL DEFAULT 30,
			vat_rate VARCHAR(20) NOT NULL DEFAULT 'reduced_food',
			vat_mode VARCHAR(20) NOT NULL DEFAULT 'inclusive',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS margin_snapshots (
			id SERIAL PRIMARY KEY,
			organization_id UUID UNIQUE NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			avg_margin_pct NUMERIC(6,2) NOT NULL,
			median_margin_pct NUMERIC(6,2) NOT NULL,
			item_count INT NOT NULL,
			excellent_count INT NOT NULL DEFAULT 0,
			good_count INT NOT NULL DEFAULT 0,
			warning_count INT NOT NULL DEFAULT 0,
			danger_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS kv_store (
			namespace VARCHAR(50) NOT NULL,
			key VARCHAR(255) NOT NULL,
			value JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
