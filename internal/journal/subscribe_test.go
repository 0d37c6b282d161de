package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("receives appended entries", func(t *testing.T) {
		client, _ := setupTestClient(t)

		sub, err := client.Subscribe(ctx)
		require.NoError(t, err)
		defer sub.Close()

		appended, err := client.Append(ctx, "show_published", "Heat", nil)
		require.NoError(t, err)

		select {
		case e := <-sub.Entries():
			assert.Equal(t, appended.ID, e.ID)
			assert.Equal(t, "Heat", e.Subject)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for entry")
		}
	})

	t.Run("reports malformed messages and continues", func(t *testing.T) {
		client, mr := setupTestClient(t)

		sub, err := client.Subscribe(ctx)
		require.NoError(t, err)
		defer sub.Close()

		mr.Publish(EventsChannel("test-instance"), "{broken")
		_, err = client.Append(ctx, "user_registered", "joe", nil)
		require.NoError(t, err)

		select {
		case err := <-sub.Errors():
			assert.Contains(t, err.Error(), "failed to unmarshal journal entry")
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for error")
		}

		select {
		case e := <-sub.Entries():
			assert.Equal(t, "joe", e.Subject)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for entry")
		}
	})

	t.Run("close ends the stream", func(t *testing.T) {
		client, _ := setupTestClient(t)

		sub, err := client.Subscribe(ctx)
		require.NoError(t, err)

		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())

		select {
		case _, ok := <-sub.Entries():
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("entries channel not closed")
		}
	})

	t.Run("ignores other instances", func(t *testing.T) {
		client, mr := setupTestClient(t)

		sub, err := client.Subscribe(ctx)
		require.NoError(t, err)
		defer sub.Close()

		mr.Publish(EventsChannel("other"), `{"id":"x","type":"user_registered"}`)

		select {
		case e := <-sub.Entries():
			t.Fatalf("unexpected entry %+v", e)
		case <-time.After(100 * time.Millisecond):
		}
	})
}
