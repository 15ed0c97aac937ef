package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marcosboni7/backsleeping/internal/domain"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the database schema
	err = initializeTestDatabase(testDB)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initializeTestDatabase runs the schema initialization and seed data
func initializeTestDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	schemaPath := filepath.Join("..", "..", "db", "init_pg_db.sql")
	schemaSQL, err := os.ReadFile(schemaPath) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	_, err = sqlDB.Exec(string(schemaSQL))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	seedPath := filepath.Join("..", "..", "db", "pg_test_data.sql")
	if _, err := os.Stat(seedPath); err == nil {
		seedSQL, err := os.ReadFile(seedPath) //nolint:gosec,G304
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}

		_, err = sqlDB.Exec(string(seedSQL))
		if err != nil {
			return fmt.Errorf("failed to execute seed data: %w", err)
		}
	}

	return nil
}

// initPGTestDB creates a store bound to a transaction that is rolled back when
// the test finishes, so tests never observe each other's writes
func initPGTestDB(t *testing.T) Store {
	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// cleanupPGTestDB is handled by the transaction rollback in t.Cleanup
func cleanupPGTestDB(t *testing.T) {
}

// TestPostgreSQLStore runs the shared store suite against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	RunStoreTests(t, initPGTestDB, cleanupPGTestDB)
}

// TestPurchaseItemConcurrent runs two purchases of the same item against the
// shared connection pool. Exactly one must succeed; the loser must fail the
// re-checked ownership precondition and leave the balance debited once.
// It cannot use the rollback harness because both purchases need real,
// separately committed transactions.
func TestPurchaseItemConcurrent(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	ctx := context.Background()
	s := NewPGStore(testDB)

	account, err := s.CreateAccount(ctx, CreateAccountInput{
		Username:        "concurrent_buyer",
		Email:           "concurrent_buyer@example.com",
		PasswordHash:    "x",
		StartingBalance: 1000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		testDB.Exec("DELETE FROM users WHERE id = ?", account.ID)
	})

	const itemID = int64(1) // Aura Dourada, price 300

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.PurchaseItem(ctx, account.ID, itemID)
		}(i)
	}
	wg.Wait()

	var successes, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, domain.ErrAlreadyOwned):
			rejected++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, rejected)

	after, err := s.GetAccountByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, int64(700), after.Balance)

	entries, err := s.ListLedgerEntries(ctx, account.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestPurchaseItemBalanceRace runs two purchases of different items that the
// balance can only cover one of. Whichever transaction commits second must be
// rejected by the balance check made under the row lock, not by ownership.
func TestPurchaseItemBalanceRace(t *testing.T) {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	ctx := context.Background()
	s := NewPGStore(testDB)

	account, err := s.CreateAccount(ctx, CreateAccountInput{
		Username:        "race_buyer",
		Email:           "race_buyer@example.com",
		PasswordHash:    "x",
		StartingBalance: 700,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		testDB.Exec("DELETE FROM users WHERE id = ?", account.ID)
	})

	// Aura Dourada (300) and Aura Neon (500): each affordable alone, not both
	items := []int64{1, 2}
	prices := map[int64]int64{1: 300, 2: 500}

	var wg sync.WaitGroup
	errs := make([]error, len(items))
	for i, itemID := range items {
		wg.Add(1)
		go func(i int, itemID int64) {
			defer wg.Done()
			_, errs[i] = s.PurchaseItem(ctx, account.ID, itemID)
		}(i, itemID)
	}
	wg.Wait()

	winner := int64(-1)
	var rejected int
	for i, err := range errs {
		switch {
		case err == nil:
			winner = items[i]
		case assert.ErrorIs(t, err, domain.ErrInsufficientBalance):
			rejected++
		}
	}
	require.NotEqual(t, int64(-1), winner)
	assert.Equal(t, 1, rejected)

	after, err := s.GetAccountByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, 700-prices[winner], after.Balance)

	entries, err := s.ListLedgerEntries(ctx, account.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
