package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	// Check if migrations directory exists
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatal("Migrations directory does not exist")
	}

	// Expected migration files
	expectedMigrations := []string{
		"00001_create_categories_table.sql",
		"00002_create_products_table.sql",
		"00003_create_price_ranges_table.sql",
		"00004_create_shipping_options_table.sql",
		"00005_create_promo_codes_table.sql",
		"00006_create_orders_table.sql",
		"00007_create_order_items_table.sql",
		"00008_seed_catalog.sql",
	}

	for _, migration := range expectedMigrations {
		path := filepath.Join(migrationsDir, migration)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Migration file %s does not exist", migration)
		}
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	migrationsDir := "../../migrations"

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		content, err := os.ReadFile(filepath.Join(migrationsDir, file.Name()))
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", file.Name(), err)
			continue
		}

		contentStr := string(content)

		// Check for goose Up directive
		if !strings.Contains(contentStr, "-- +goose Up") {
			t.Errorf("Migration file %s missing '-- +goose Up' directive", file.Name())
		}

		// Check for goose Down directive
		if !strings.Contains(contentStr, "-- +goose Down") {
			t.Errorf("Migration file %s missing '-- +goose Down' directive", file.Name())
		}

		// Check for StatementBegin/End
		if !strings.Contains(contentStr, "-- +goose StatementBegin") {
			t.Errorf("Migration file %s missing '-- +goose StatementBegin' directive", file.Name())
		}

		if !strings.Contains(contentStr, "-- +goose StatementEnd") {
			t.Errorf("Migration file %s missing '-- +goose StatementEnd' directive", file.Name())
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files found")
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	migrationsDir := "../../migrations"

	expectedTables := map[string]string{
		"categories":       "00001_create_categories_table.sql",
		"products":         "00002_create_products_table.sql",
		"price_ranges":     "00003_create_price_ranges_table.sql",
		"shipping_options": "00004_create_shipping_options_table.sql",
		"promo_codes":      "00005_create_promo_codes_table.sql",
		"orders":           "00006_create_orders_table.sql",
		"order_items":      "00007_create_order_items_table.sql",
	}

	for tableName, migrationFile := range expectedTables {
		path := filepath.Join(migrationsDir, migrationFile)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", migrationFile, err)
			continue
		}

		contentStr := string(content)

		// Check if migration creates the table
		createTableStmt := "CREATE TABLE IF NOT EXISTS " + tableName
		if !strings.Contains(contentStr, createTableStmt) {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}

		// Check if migration has drop table in down section
		dropTableStmt := "DROP TABLE IF EXISTS " + tableName
		if !strings.Contains(contentStr, dropTableStmt) {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
	}
}

func TestProductsTableHasRequiredColumns(t *testing.T) {
	migrationsDir := "../../migrations"
	path := filepath.Join(migrationsDir, "00002_create_products_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read products migration: %v", err)
	}

	contentStr := string(content)
	requiredColumns := []string{
		"id VARCHAR(100) PRIMARY KEY",
		"name VARCHAR",
		"tagline VARCHAR",
		"description TEXT",
		"category VARCHAR",
		"price DECIMAL",
		"original_price DECIMAL",
		"image_url VARCHAR",
		"rating DECIMAL",
		"in_stock BOOLEAN",
		"badge VARCHAR",
		"specs JSONB",
		"position INTEGER",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Products table missing required column definition: %s", column)
		}
	}

	// Check for foreign key constraint
	if !strings.Contains(contentStr, "FOREIGN KEY (category)") {
		t.Error("Products table missing foreign key constraint to categories")
	}
}

func TestSeedContainsCatalogData(t *testing.T) {
	migrationsDir := "../../migrations"
	path := filepath.Join(migrationsDir, "00008_seed_catalog.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read catalog seed migration: %v", err)
	}

	contentStr := string(content)

	// The promo table must carry both fixed rules the storefront knows.
	for _, code := range []string{"LUCA10", "DRONE50"} {
		if !strings.Contains(contentStr, code) {
			t.Errorf("Catalog seed missing promo code %s", code)
		}
	}

	// The delivery menu is fixed.
	for _, option := range []string{"standard", "express", "priority"} {
		if !strings.Contains(contentStr, "'"+option+"'") {
			t.Errorf("Catalog seed missing shipping option %s", option)
		}
	}

	// Every filterable category must be seeded, including the "all"
	// pseudo-category used by the filter menu.
	for _, category := range []string{"'all'", "'entry'", "'intermediate'", "'pro'", "'accessoires'"} {
		if !strings.Contains(contentStr, category) {
			t.Errorf("Catalog seed missing category %s", category)
		}
	}
}

func TestPromoCodesTableConstrainsDiscountType(t *testing.T) {
	migrationsDir := "../../migrations"
	path := filepath.Join(migrationsDir, "00005_create_promo_codes_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read promo_codes migration: %v", err)
	}

	contentStr := string(content)

	// Only the two known discount shapes are representable.
	for _, discountType := range []string{"percent", "fixed"} {
		if !strings.Contains(contentStr, discountType) {
			t.Errorf("Promo codes discount_type constraint missing value: %s", discountType)
		}
	}
}
