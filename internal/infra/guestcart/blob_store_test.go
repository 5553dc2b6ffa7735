package guestcart

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) (*blob.Bucket, *blobStore) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return bucket, NewBlobStoreWithBucket(bucket, logger).(*blobStore)
}

func TestBlobStore_LoadMissingSession(t *testing.T) {
	_, store := newMemStore(t)

	lines, err := store.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBlobStore_SaveAndLoad(t *testing.T) {
	_, store := newMemStore(t)
	ctx := context.Background()

	saved := []*entity.CartLine{
		{
			ID:        entity.NewGuestLineID(),
			ProductID: 7,
			Size:      "M",
			Quantity:  2,
			Product:   entity.ProductSnapshot{ID: 7, Name: "Classic Tee", Price: 1499},
		},
	}
	require.NoError(t, store.Save(ctx, "sess-1", saved))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved[0].ID, loaded[0].ID)
	assert.Equal(t, int64(7), loaded[0].ProductID)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.Equal(t, 1499.0, loaded[0].Product.Price)
}

func TestBlobStore_SaveOverwritesWholesale(t *testing.T) {
	_, store := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", []*entity.CartLine{
		{ID: entity.NewGuestLineID(), ProductID: 7, Size: "M", Quantity: 2},
		{ID: entity.NewGuestLineID(), ProductID: 9, Size: "L", Quantity: 1},
	}))
	require.NoError(t, store.Save(ctx, "sess-1", []*entity.CartLine{
		{ID: entity.NewGuestLineID(), ProductID: 7, Size: "M", Quantity: 5},
	}))

	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 5, loaded[0].Quantity)
}

func TestBlobStore_SessionsAreIsolated(t *testing.T) {
	_, store := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", []*entity.CartLine{
		{ID: entity.NewGuestLineID(), ProductID: 7, Size: "M", Quantity: 1},
	}))

	lines, err := store.Load(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBlobStore_ClearIsIdempotent(t *testing.T) {
	_, store := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", []*entity.CartLine{
		{ID: entity.NewGuestLineID(), ProductID: 7, Size: "M", Quantity: 1},
	}))

	require.NoError(t, store.Clear(ctx, "sess-1"))
	require.NoError(t, store.Clear(ctx, "sess-1"))

	lines, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBlobStore_LoadCorruptBlob(t *testing.T) {
	bucket, store := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, sessionKey("sess-1"), []byte("{not json"), nil))

	lines, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}
