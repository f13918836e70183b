package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/domain"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
	pgkv "github.com/alothmany-studio/studio-backend/internal/store/postgres"
)

// testDSN resolves the PostgreSQL DSN for integration tests.
// Skips the test if TEST_DB_DSN is not set; individual TEST_DB_* env vars
// are accepted as a fallback.
func testDSN(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn != "" {
		return dsn
	}

	host := os.Getenv("TEST_DB_HOST")
	port := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	dbname := os.Getenv("TEST_DB_NAME")
	if host != "" && port != "" && user != "" && dbname != "" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	t.Skip("TEST_DB_DSN or TEST_DB_* environment variables not set, skipping PostgreSQL integration test")
	return ""
}

func setupPostgresStore(t *testing.T) (store.Store, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	dsn := testDSN(t)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	kv := pgkv.NewKV(pool)
	require.NoError(t, kv.InitSchema(ctx))

	// A plain database/sql handle for verifying rows directly.
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { _ = db.Close() })

	// Each run starts from empty collections.
	_, err = db.Exec(`DELETE FROM store_documents`)
	require.NoError(t, err)

	return store.NewDocumentStore(kv, notify.NewBroadcaster()), db
}

func TestPostgresStore_OrderRoundTrip(t *testing.T) {
	st, db := setupPostgresStore(t)
	ctx := context.Background()

	o, err := st.SaveOrder(ctx, domain.NewOrder{
		CustomerName: "عميل جديد عبر الروبوت",
		Requirements: "أريد متجر إلكتروني",
		Price:        "$500",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)

	require.NoError(t, st.UpdateOrderContent(ctx, o.ID, "<html></html>"))

	orders, err := st.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusGenerated, orders[0].Status)
	assert.Equal(t, "<html></html>", orders[0].HTMLContent)

	// The collection lands as a single JSONB document keyed like the
	// legacy client-side store.
	var doc string
	err = db.QueryRow(`SELECT doc::text FROM store_documents WHERE key = $1`, "alothmany_db_orders").Scan(&doc)
	require.NoError(t, err)
	assert.Contains(t, doc, o.ID)
	assert.Contains(t, doc, "أريد متجر إلكتروني")
}

func TestPostgresStore_ProjectsSeedThenPersist(t *testing.T) {
	st, db := setupPostgresStore(t)
	ctx := context.Background()

	// A fresh database serves the seed set without writing anything.
	projects, err := st.GetProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 10)

	var count int
	err = db.QueryRow(`SELECT count(*) FROM store_documents WHERE key = $1`, "alothmany_db_projects").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// The first mutation makes the collection durable, seed included.
	_, err = st.AddProject(ctx, domain.NewProject{
		Title:    "متجر تجريبي",
		Category: domain.CategoryStore,
		Image:    "https://example.com/cover.jpg",
	})
	require.NoError(t, err)

	err = db.QueryRow(`SELECT count(*) FROM store_documents WHERE key = $1`, "alothmany_db_projects").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	projects, err = st.GetProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 11)
}

func TestPostgresStore_SettingsUpsert(t *testing.T) {
	st, _ := setupPostgresStore(t)
	ctx := context.Background()

	settings, err := st.GetSettings(ctx)
	require.NoError(t, err)

	settings.SiteName = "استوديو العثماني"
	require.NoError(t, st.UpdateSettings(ctx, *settings))

	got, err := st.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "استوديو العثماني", got.SiteName)
}
