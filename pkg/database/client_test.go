package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/crewkit/squadron/ent"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	// Check if we're in CI with an external database
	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		// CI mode: use external PostgreSQL service container
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		// Local dev mode: use testcontainers
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := pgContainer.Terminate(context.Background()); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		// Get connection string from container
		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	// Open database connection using pgx driver
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	// Configure connection pool for tests
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Create Ent driver from existing database connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create Ent client
	entClient := ent.NewClient(ent.Driver(drv))

	// Run migrations (auto-migration for tests)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Create the partial indexes the SQL migrations would have applied
	err = CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestLiveStatusIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	commanderID := uuid.NewString()

	// One live row, one terminal row
	_, err := client.TaskQueueItem.Create().
		SetID(uuid.NewString()).
		SetCommanderID(commanderID).
		SetSubTaskIndex(0).
		SetTitle("Schema migration").
		SetPrompt("add the users table").
		SetStatus(taskqueueitem.StatusInProgress).
		SetEnqueuedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.TaskQueueItem.Create().
		SetID(uuid.NewString()).
		SetCommanderID(commanderID).
		SetSubTaskIndex(1).
		SetTitle("Repository layer").
		SetPrompt("wire the repository").
		SetStatus(taskqueueitem.StatusCompleted).
		SetEnqueuedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// The partial index exists
	var indexName string
	err = client.DB().QueryRowContext(ctx,
		`SELECT indexname FROM pg_indexes
		WHERE tablename = 'task_queue_items' AND indexname = 'taskqueueitem_status_live'`,
	).Scan(&indexName)
	require.NoError(t, err)
	assert.Equal(t, "taskqueueitem_status_live", indexName)

	// The index predicate matches exactly the non-terminal rows
	rows, err := client.DB().QueryContext(ctx,
		`SELECT sub_task_index FROM task_queue_items
		WHERE commander_id = $1 AND status IN ('pending', 'waiting', 'in_progress')`,
		commanderID,
	)
	require.NoError(t, err)
	defer rows.Close()

	var live []int
	for rows.Next() {
		var index int
		require.NoError(t, rows.Scan(&index))
		live = append(live, index)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{0}, live)
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// Response time is reported in milliseconds (can be 0 for fast local pings)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// If these were nanoseconds, any observable wait would exceed 1,000,000
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.Less(t, waitDuration, float64(1000000), "wait_duration_ms should be in milliseconds, not nanoseconds")
}
