package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"marina-guard-backend/internal/config"
	"marina-guard-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness probe
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "marina"
	pgPassword = "marina"
	pgDatabase = "marina_test"
)

// marinaTables lists every table the migrations create, children first
var marinaTables = []string{
	"messages",
	"logs",
	"shift_assignments",
	"shifts",
	"recurring_user_assignments",
	"recurring_shift_patterns",
	"safety_checklist_item_checks",
	"safety_checklist_responses",
	"safety_checklist_items",
	"equipment_checkouts",
	"location_check_ins",
	"duty_sessions",
	"locations",
	"users",
}

// One Postgres container serves the whole test binary
var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	resource      *dockertest.Resource
	sharedDB      *gorm.DB
	sharedConfig  *config.Config
)

// BaseTestSuite hands a migrated database to repository integration suites
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a
// suite bound to it. The schema comes from the real migrations.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start test database: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it
// once all suites have run.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pool == nil || resource == nil {
		return
	}
	if err := pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container %s: %v", resource.Container.Name, err)
	}
	pool, resource = nil, nil
}

// SetupTest truncates all tables before a test
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest truncates all tables after a test
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every application table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	stmt := "TRUNCATE TABLE " + strings.Join(marinaTables, ", ") + " RESTART IDENTITY CASCADE"
	if err := s.DB.Exec(stmt).Error; err != nil {
		log.Printf("truncate failed: %v", err)
	}
}

func startPostgres() error {
	p, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	p.MaxWait = 2 * time.Minute
	pool = p

	resource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	// Reap the container even if the test binary is killed
	_ = resource.Expire(600)

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		return probe.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("migrate test database: %w", err)
	}
	sharedDB = db
	sharedConfig = &config.Config{
		Environment: "test",
		Port:        "7008",
		LogLevel:    "debug",
		DatabaseURL: dsn,
		Timezone:    "UTC",
	}

	log.Printf("Postgres ready on port %s", port)
	return nil
}
