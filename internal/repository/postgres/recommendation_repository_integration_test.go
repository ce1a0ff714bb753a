//go:build integration

package postgres

import (
	"context"
	"math"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Needs a throwaway database, e.g.
// TEST_DATABASE_DSN="host=localhost user=postgres password=... dbname=store_test sslmode=disable"
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	ddl := []string{
		`DROP TABLE IF EXISTS order_items, orders, products, product_associations, users CASCADE`,
		`CREATE TABLE products (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL,
			price NUMERIC NOT NULL,
			image_url TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE users (id BIGINT PRIMARY KEY, name TEXT NOT NULL, created_at TIMESTAMPTZ DEFAULT NOW())`,
		`CREATE TABLE orders (id BIGINT PRIMARY KEY, user_id BIGINT NOT NULL, created_at TIMESTAMPTZ DEFAULT NOW())`,
		`CREATE TABLE order_items (order_id BIGINT NOT NULL, product_id BIGINT NOT NULL, quantity INT NOT NULL, price NUMERIC NOT NULL)`,
		`CREATE TABLE product_associations (product1 BIGINT NOT NULL, product2 BIGINT NOT NULL, frequency BIGINT NOT NULL)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}

	return db
}

// Orders O1:[A,B], O2:[A,C], O3:[A,B]. Suggestions for A: B in 2 of 3 anchor
// orders, C in 1 of 3.
func seedCoOccurrenceScenario(t *testing.T, db *gorm.DB) {
	t.Helper()

	seed := []string{
		`INSERT INTO users (id, name) VALUES (1, 'aya')`,
		`INSERT INTO products (id, name, category, price) VALUES
			(1, 'A', 'grocery', 5),
			(2, 'B', 'grocery', 10),
			(3, 'C', 'grocery', 4),
			(4, 'D', 'grocery', 7)`,
		`INSERT INTO orders (id, user_id) VALUES (1, 1), (2, 1), (3, 1)`,
		`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES
			(1, 1, 1, 5), (1, 2, 1, 9),
			(2, 1, 1, 5), (2, 3, 1, 4),
			(3, 1, 1, 5), (3, 2, 1, 10)`,
	}
	for _, stmt := range seed {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestCoOccurrencesScenario(t *testing.T) {
	db := openTestDB(t)
	seedCoOccurrenceScenario(t, db)
	repo := NewRecommendationRepository(db)

	got, err := repo.CoOccurrences(context.Background(), 1, 0.1)
	if err != nil {
		t.Fatalf("CoOccurrences: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2: %+v", len(got), got)
	}
	if got[0].Name != "B" || got[1].Name != "C" {
		t.Fatalf("order = [%s, %s], want [B, C]", got[0].Name, got[1].Name)
	}
	if math.Abs(got[0].Support-2.0/3.0) > 1e-9 {
		t.Errorf("support(B) = %v, want 2/3", got[0].Support)
	}
	if math.Abs(got[1].Support-1.0/3.0) > 1e-9 {
		t.Errorf("support(C) = %v, want 1/3", got[1].Support)
	}

	// avg_price averages recorded sale prices, not catalog price: B sold at
	// 9 and 10 while its catalog price is 10.
	if math.Abs(got[0].AvgPrice-9.5) > 1e-9 {
		t.Errorf("avg_price(B) = %v, want 9.5", got[0].AvgPrice)
	}
	for _, s := range got {
		if s.Support <= 0 || s.Support > 1 {
			t.Errorf("support out of (0,1]: %+v", s)
		}
	}
}

func TestCoOccurrencesHighThresholdEmpty(t *testing.T) {
	db := openTestDB(t)
	seedCoOccurrenceScenario(t, db)
	repo := NewRecommendationRepository(db)

	// max support in the scenario is 2/3, below 0.7
	got, err := repo.CoOccurrences(context.Background(), 1, 0.7)
	if err != nil {
		t.Fatalf("CoOccurrences: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want empty result above max support, got %+v", got)
	}
}

func TestCoOccurrencesBoundaryThreshold(t *testing.T) {
	db := openTestDB(t)
	seedCoOccurrenceScenario(t, db)
	repo := NewRecommendationRepository(db)

	// The filter is >=, computed in numeric SQL arithmetic, so a threshold
	// equal to a candidate's exact support keeps that candidate.
	got, err := repo.CoOccurrences(context.Background(), 1, 1.0/3.0)
	if err != nil {
		t.Fatalf("CoOccurrences: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("boundary threshold dropped a candidate: %+v", got)
	}
}

func TestCoOccurrencesUnknownProductEmpty(t *testing.T) {
	db := openTestDB(t)
	seedCoOccurrenceScenario(t, db)
	repo := NewRecommendationRepository(db)

	// No orders reference product 999: zero anchor orders, empty result,
	// no division-by-zero error.
	got, err := repo.CoOccurrences(context.Background(), 999, 0)
	if err != nil {
		t.Fatalf("CoOccurrences: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want empty result for unknown product, got %+v", got)
	}
}

func TestCoOccurrencesTruncatesToFive(t *testing.T) {
	db := openTestDB(t)
	repo := NewRecommendationRepository(db)

	if err := db.Exec(`INSERT INTO products (id, name, category, price)
		SELECT i, 'P' || i, 'grocery', i FROM generate_series(1, 10) AS i`).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}
	if err := db.Exec(`INSERT INTO orders (id, user_id) VALUES (1, 1)`).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Exec(`INSERT INTO order_items (order_id, product_id, quantity, price)
		SELECT 1, i, 1, i FROM generate_series(1, 10) AS i`).Error; err != nil {
		t.Fatalf("seed items: %v", err)
	}

	got, err := repo.CoOccurrences(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("CoOccurrences: %v", err)
	}
	if len(got) > 5 {
		t.Errorf("got %d suggestions, want at most 5", len(got))
	}
}

func TestTopAssociationsOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewRecommendationRepository(db)

	if err := db.Exec(`INSERT INTO products (id, name, category, price)
		SELECT i, 'P' || i, 'grocery', i FROM generate_series(1, 30) AS i`).Error; err != nil {
		t.Fatalf("seed products: %v", err)
	}
	if err := db.Exec(`INSERT INTO product_associations (product1, product2, frequency)
		SELECT i, i + 1, i * 10 FROM generate_series(1, 20) AS i`).Error; err != nil {
		t.Fatalf("seed associations: %v", err)
	}

	got, err := repo.TopAssociations(context.Background())
	if err != nil {
		t.Fatalf("TopAssociations: %v", err)
	}

	if len(got) != 10 {
		t.Fatalf("got %d pairs, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frequency > got[i-1].Frequency {
			t.Errorf("pairs not ordered by frequency descending: %+v", got)
			break
		}
	}
	if got[0].Product1 != "P20" {
		t.Errorf("top pair = %+v, want the most frequent one (P20)", got[0])
	}
}
