package repository

import (
	"context"
	"os"
	"testing"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testPool connects to the database named by CARRYON_TEST_DATABASE_URL
// and prepares an empty airports table. Tests using it are skipped
// when the variable is unset so the unit suite stays self-contained.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("CARRYON_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("CARRYON_TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	ctx := context.Background()
	_, err = pool.Exec(ctx, `
		create table if not exists airports (
			id           bigserial primary key,
			iata         text not null default '',
			icao         text not null default '',
			name         text not null default '',
			city         text not null default '',
			country      text not null default '',
			country_code text not null default '',
			lat          double precision not null default 0,
			lon          double precision not null default 0
		)`)
	if err != nil {
		t.Fatalf("creating airports table: %v", err)
	}
	if _, err := pool.Exec(ctx, `delete from airports`); err != nil {
		t.Fatalf("clearing airports table: %v", err)
	}
	return pool
}

func insertAirport(t *testing.T, pool *pgxpool.Pool, a model.Airport) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`insert into airports (iata, icao, name, city, country, country_code)
		 values ($1, $2, $3, $4, $5, $6)`,
		a.IATA, a.ICAO, a.Name, a.City, a.Country, a.CountryCode)
	if err != nil {
		t.Fatalf("inserting airport %s: %v", a.IATA, err)
	}
}

func TestAirportSearchRanking(t *testing.T) {
	pool := testPool(t)
	repo := NewAirportRepository(pool)
	ctx := context.Background()

	// An exact IATA match must outrank a city that merely contains the
	// query, regardless of insertion order or case.
	insertAirport(t, pool, model.Airport{IATA: "ZZZ", City: "Jfkville", Name: "Jfkville Regional"})
	insertAirport(t, pool, model.Airport{IATA: "jfk", City: "New York", Name: "John F Kennedy Intl"})

	results, err := repo.Search(ctx, "JFK", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].IATA != "jfk" {
		t.Errorf("first result IATA = %q, want exact match jfk first", results[0].IATA)
	}
	if results[1].City != "Jfkville" {
		t.Errorf("second result city = %q, want Jfkville", results[1].City)
	}
}

func TestAirportSearchRankingPrefixTiers(t *testing.T) {
	pool := testPool(t)
	repo := NewAirportRepository(pool)
	ctx := context.Background()

	// rank 1: IATA prefix, rank 2: city prefix, rank 3: name prefix,
	// rank 4: substring elsewhere.
	insertAirport(t, pool, model.Airport{IATA: "AAA", City: "Elsewhere", Name: "Greater Parafield"})
	insertAirport(t, pool, model.Airport{IATA: "BBB", City: "Somewhere", Name: "Paris Orly"})
	insertAirport(t, pool, model.Airport{IATA: "CCC", City: "Paris", Name: "Charles de Gaulle"})
	insertAirport(t, pool, model.Airport{IATA: "PAR", City: "Nowhere", Name: "Nowhere Field"})

	results, err := repo.Search(ctx, "pa", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	want := []string{"PAR", "CCC", "BBB", "AAA"}
	for i, iata := range want {
		if results[i].IATA != iata {
			t.Errorf("result[%d].IATA = %q, want %q", i, results[i].IATA, iata)
		}
	}
}

func TestAirportSearchTieBreaksOnShorterIATA(t *testing.T) {
	pool := testPool(t)
	repo := NewAirportRepository(pool)
	ctx := context.Background()

	// Both rows are city-prefix matches (rank 2); the shorter IATA
	// wins, then the shorter city.
	insertAirport(t, pool, model.Airport{IATA: "XLON", City: "London East", Name: "City Strip"})
	insertAirport(t, pool, model.Airport{IATA: "LHR", City: "London", Name: "Heathrow"})
	insertAirport(t, pool, model.Airport{IATA: "LCY", City: "London City", Name: "City Airport"})

	results, err := repo.Search(ctx, "lond", 20)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	want := []string{"LHR", "LCY", "XLON"}
	for i, iata := range want {
		if results[i].IATA != iata {
			t.Errorf("result[%d].IATA = %q, want %q", i, results[i].IATA, iata)
		}
	}
}

func TestAirportSearchRespectsLimit(t *testing.T) {
	pool := testPool(t)
	repo := NewAirportRepository(pool)
	ctx := context.Background()

	for _, city := range []string{"Berlin", "Bergen", "Bern"} {
		insertAirport(t, pool, model.Airport{City: city})
	}

	results, err := repo.Search(ctx, "ber", 2)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want limit of 2", len(results))
	}
}
