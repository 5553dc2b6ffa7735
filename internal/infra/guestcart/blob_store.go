// Package guestcart persists anonymous session carts in a blob bucket.
package guestcart

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore implements GuestCartStore on a gocloud.dev bucket: one JSON blob
// per session key, read on load and overwritten wholesale on every mutation.
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StoreParams holds dependencies for the guest cart store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns a GuestCartStore.
func NewBlobStore(params StoreParams) (service.GuestCartStore, error) {
	cfg := params.Config.GuestCart
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("guest cart bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open guest cart bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing guest cart bucket")

			return bucket.Close()
		},
	})

	return &blobStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// NewBlobStoreWithBucket wraps an already-open bucket. Used by tests with an
// in-memory driver.
func NewBlobStoreWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.GuestCartStore {
	return &blobStore{
		bucket: bucket,
		logger: logger,
	}
}

// Load reads the session's line list. A missing key yields an empty list.
func (s *blobStore) Load(ctx context.Context, sessionID string) ([]*entity.CartLine, error) {
	data, err := s.bucket.ReadAll(ctx, sessionKey(sessionID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []*entity.CartLine{}, nil
		}

		return nil, errors.Wrap(err, "failed to read guest cart")
	}

	var lines []*entity.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		// A corrupt blob is unrecoverable; treat it as an empty cart rather
		// than locking the session out.
		s.logger.WarnContext(ctx, "discarding corrupt guest cart blob",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)

		return []*entity.CartLine{}, nil
	}

	return lines, nil
}

// Save overwrites the session's line list.
func (s *blobStore) Save(ctx context.Context, sessionID string, lines []*entity.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.bucket.WriteAll(ctx, sessionKey(sessionID), data, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrap(err, "failed to write guest cart")
	}

	return nil
}

// Clear removes the session's line list. Clearing a missing key is a no-op.
func (s *blobStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.bucket.Delete(ctx, sessionKey(sessionID)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete guest cart")
	}

	return nil
}

func sessionKey(sessionID string) string {
	return "carts/" + sessionID + ".json"
}
