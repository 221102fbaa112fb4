package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PageWriter persists provider pages into a snapshot.
type PageWriter interface {
	// WritePage stores one raw page payload for endpoint at offset.
	WritePage(ctx context.Context, endpoint string, offset int, data []byte) error

	// WriteManifest stores the run manifest.
	WriteManifest(ctx context.Context, m *Manifest) error

	// Close releases any resources held for the run.
	Close() error
}

// DirWriter writes pages into the filesystem layout consumed by the
// filesystem page fetcher. It holds an exclusive file lock on the
// snapshot root until Close, so concurrent mirror runs cannot
// interleave pages in the same directory.
type DirWriter struct {
	root   string
	lock   *flock.Flock
	logger zerolog.Logger
}

// NewDirWriter creates the snapshot root if needed and locks it.
func NewDirWriter(root string) (*DirWriter, error) {
	if root == "" {
		root = DefaultRoot
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot root: %w", err)
	}

	lock := flock.New(filepath.Join(root, ".mirror.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock snapshot root: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("snapshot root %s is locked by another run", root)
	}

	return &DirWriter{
		root:   root,
		lock:   lock,
		logger: log.With().Str("component", "snapshot").Str("root", root).Logger(),
	}, nil
}

// WritePage stores one page file, atomically via temp file and rename.
func (w *DirWriter) WritePage(ctx context.Context, endpoint string, offset int, data []byte) error {
	dir := filepath.Join(w.root, endpoint)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", endpoint, err)
	}

	path := PagePath(w.root, endpoint, offset)
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write %s page: %w", endpoint, err)
	}

	pagesWrittenTotal.WithLabelValues(endpoint).Inc()
	bytesWrittenTotal.WithLabelValues(endpoint).Add(float64(len(data)))

	w.logger.Debug().
		Str("endpoint", endpoint).
		Int("offset", offset).
		Int("bytes", len(data)).
		Str("path", path).
		Msg("Page written")

	return nil
}

// WriteManifest stores the manifest at the snapshot root.
func (w *DirWriter) WriteManifest(ctx context.Context, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}

	if err := writeFileAtomic(ManifestPath(w.root), data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	w.logger.Info().
		Str("run_id", m.RunID).
		Int("endpoints", len(m.Endpoints)).
		Int("records", m.TotalRecords()).
		Msg("Manifest written")

	return nil
}

// Close releases the root lock.
func (w *DirWriter) Close() error {
	return w.lock.Unlock()
}

// writeFileAtomic writes data to path through a temp file and rename,
// so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// RedisWriter writes pages into the Redis key layout consumed by the
// Redis page fetcher. Pages are stored without expiry; a snapshot is a
// deliberate dump, not a cache.
type RedisWriter struct {
	redis  *redis.Client
	prefix string
	logger zerolog.Logger
}

// NewRedisWriter creates a writer storing pages under the given key
// prefix.
func NewRedisWriter(redisClient *redis.Client, prefix string) *RedisWriter {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisWriter{
		redis:  redisClient,
		prefix: prefix,
		logger: log.With().Str("component", "snapshot").Str("prefix", prefix).Logger(),
	}
}

// WritePage stores one page payload under its offset key.
func (w *RedisWriter) WritePage(ctx context.Context, endpoint string, offset int, data []byte) error {
	key := PageKey(w.prefix, endpoint, offset)
	if err := w.redis.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("write %s page: %w", endpoint, err)
	}

	pagesWrittenTotal.WithLabelValues(endpoint).Inc()
	bytesWrittenTotal.WithLabelValues(endpoint).Add(float64(len(data)))

	w.logger.Debug().
		Str("endpoint", endpoint).
		Int("offset", offset).
		Int("bytes", len(data)).
		Msg("Page written")

	return nil
}

// WriteManifest stores the manifest under the prefix's manifest key.
func (w *RedisWriter) WriteManifest(ctx context.Context, m *Manifest) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}

	if err := w.redis.Set(ctx, ManifestKey(w.prefix), data, 0).Err(); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	w.logger.Info().
		Str("run_id", m.RunID).
		Int("endpoints", len(m.Endpoints)).
		Msg("Manifest written")

	return nil
}

// Close is a no-op; the Redis client is owned by the caller.
func (w *RedisWriter) Close() error {
	return nil
}
