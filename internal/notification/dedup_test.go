package notification_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/internal/notification"
)

func TestRedisDeduplicator(t *testing.T) {
	t.Parallel()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	d := notification.NewRedisDeduplicator(client, time.Minute)
	key := "test:" + uuid.Must(uuid.NewV4()).String()

	first, err := d.Claim(context.Background(), key)
	require.NoError(t, err)
	require.True(t, first)

	again, err := d.Claim(context.Background(), key)
	require.NoError(t, err)
	require.False(t, again)
}
