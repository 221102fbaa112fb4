package source

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
)

// setupTestRedis creates a test Redis client.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestRedisFetcher_CursorTraversal(t *testing.T) {
	redisClient := setupTestRedis(t)
	ctx := context.Background()

	writer := snapshot.NewRedisWriter(redisClient, "testsrc")
	if err := writer.WritePage(ctx, "getCountries", 0, []byte(pageXML("getCountries", "ad", "ae", "ag"))); err != nil {
		t.Fatalf("WritePage() failed: %v", err)
	}
	if err := writer.WritePage(ctx, "getCountries", 3, []byte(pageXML("getCountries", "ai", "al"))); err != nil {
		t.Fatalf("WritePage() failed: %v", err)
	}

	fetcher := NewRedisFetcher(redisClient, "testsrc")
	cur := pagination.NewCursor(fetcher, "getCountries", 3)

	records, err := pagination.Collect(ctx, cur)
	if err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("Record count = %d, want 5", len(records))
	}
	if got := records[4].Field("name"); got != "al" {
		t.Errorf("records[4] = %q, want %q", got, "al")
	}
}

func TestRedisFetcher_MissingKey(t *testing.T) {
	redisClient := setupTestRedis(t)

	fetcher := NewRedisFetcher(redisClient, "testsrc")

	page, err := fetcher.FetchPage(context.Background(), "getCountries", 0, 1000)
	if err != nil {
		t.Fatalf("FetchPage() = %v, want nil error for missing key", err)
	}
	if page != nil {
		t.Errorf("Page = %v, want nil for missing key", page)
	}
}

func TestRedisFetcher_MalformedPayload(t *testing.T) {
	redisClient := setupTestRedis(t)
	ctx := context.Background()

	key := snapshot.PageKey("testsrc", "getCountries", 0)
	if err := redisClient.Set(ctx, key, "<getCountries><result>", 0).Err(); err != nil {
		t.Fatalf("Failed to seed page: %v", err)
	}

	fetcher := NewRedisFetcher(redisClient, "testsrc")

	_, err := fetcher.FetchPage(ctx, "getCountries", 0, 1000)
	if err == nil {
		t.Error("Expected decode error, got nil")
	}
}

func TestNewRedisFetcher_NilClient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil redis client")
		}
	}()
	NewRedisFetcher(nil, "testsrc")
}
