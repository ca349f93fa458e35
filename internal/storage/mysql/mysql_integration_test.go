//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"huduma_finder/internal/domain"
	mysqlrepo "huduma_finder/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func TestRepo_MySQL_UpsertAndFind(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=huduma",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "huduma")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()
	origin := domain.Location{Latitude: -6.7924, Longitude: 39.2083, Name: "Dar es Salaam"}

	near := domain.Provider{
		ID:          "dir_rest_001",
		Name:        "Kariakoo Kitchen",
		ServiceType: "restaurant",
		Location:    domain.Location{Latitude: -6.8161, Longitude: 39.2803, Landmark: "Kariakoo Market"},
		PriceRange:  domain.PriceRange{Min: 5, Max: 25},
		Rating:      4.3,
		Description: "swahili dishes",
		ContactInfo: "+255 700 111 222",
	}
	far := domain.Provider{
		ID:          "dir_rest_002",
		Name:        "Bagamoyo Beach Bar",
		ServiceType: "restaurant",
		Location:    domain.Location{Latitude: -6.4416, Longitude: 38.9032},
		PriceRange:  domain.PriceRange{Min: 10, Max: 60},
		Rating:      4.0,
	}
	otherService := domain.Provider{
		ID:          "dir_plumb_001",
		Name:        "City Plumbers",
		ServiceType: "plumbing",
		Location:    domain.Location{Latitude: -6.80, Longitude: 39.21},
		PriceRange:  domain.PriceRange{Min: 10, Max: 80},
		Rating:      3.9,
	}
	for _, p := range []domain.Provider{near, far, otherService} {
		if err := repo.UpsertProvider(ctx, p); err != nil {
			t.Fatalf("UpsertProvider(%s): %v", p.ID, err)
		}
	}

	// Upsert is idempotent and refreshes fields.
	near.Rating = 4.5
	if err := repo.UpsertProvider(ctx, near); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	got, err := repo.FindProviders(ctx, "restaurant", origin, 10)
	if err != nil {
		t.Fatalf("FindProviders: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only the in-radius restaurant, got %+v", got)
	}
	p := got[0]
	if p.ID != "dir_rest_001" || p.Rating != 4.5 {
		t.Fatalf("unexpected provider: %+v", p)
	}
	if p.Location.Landmark != "Kariakoo Market" || p.ContactInfo != "+255 700 111 222" {
		t.Fatalf("optional fields lost: %+v", p)
	}
	if p.Accessibility == "" {
		t.Fatalf("expected a derived accessibility label")
	}

	if err := repo.LogMiss(ctx, "tutoring", "no live or curated providers"); err != nil {
		t.Fatalf("LogMiss: %v", err)
	}
	var misses int
	if err := db.QueryRow(`SELECT COUNT(*) FROM search_misses WHERE service_type = 'tutoring'`).Scan(&misses); err != nil {
		t.Fatalf("count misses: %v", err)
	}
	if misses != 1 {
		t.Fatalf("expected one logged miss, got %d", misses)
	}
}
