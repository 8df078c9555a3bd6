// Package cartcache keeps one Redis key per user holding the serialized
// cart. The cache is a pure invalidatable projection, never a system of
// record: anything unreadable is safe to drop.
package cartcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"royalbike/internal/domain/cart"
	"royalbike/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}

	return client, cleanup, nil
}

type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func cartKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

// Load is fail-open: a missing key, an unreachable Redis, or an unparseable
// value all degrade to an empty cart. Only the sweep deletes; the request
// path never does.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cart read failed, treating as empty",
				"user_id", userID.String(), "error", err.Error())
		}
		return cart.New(), nil
	}

	entries, err := decodeEntries(raw)
	if err != nil {
		slog.Warn("corrupted cart entry, treating as empty",
			"user_id", userID.String(), "error", err.Error())
		return cart.New(), nil
	}

	return cart.Restore(entries), nil
}

// Save overwrites the key unconditionally: last writer wins, no optimistic
// locking. Carts have no TTL; they persist until cleared or checked out.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error {
	data, err := json.Marshal(c.Entries())
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// SweepCorrupted enumerates the cart namespace and deletes every key whose
// value is not a validly shaped cart. Old deployments stored carts as hashes
// and under non-UUID user keys; those are healed by deletion, not migration.
// Maintenance only; request-path code has no enumeration capability.
func (s *Store) SweepCorrupted(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		cleaned int
	)

	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return cleaned, fmt.Errorf("failed to scan cart keys: %w", err)
		}

		for _, key := range keys {
			if s.keyIsValid(ctx, key) {
				continue
			}
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return cleaned, fmt.Errorf("failed to delete corrupted cart %s: %w", key, err)
			}
			slog.Info("deleted corrupted cart", "key", key)
			cleaned++
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return cleaned, nil
}

func (s *Store) keyIsValid(ctx context.Context, key string) bool {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil means the key vanished mid-sweep, which is fine;
		// anything else (e.g. WRONGTYPE from the old hash format) is not.
		return err == redis.Nil
	}
	_, err = decodeEntries(raw)
	return err == nil
}

func decodeEntries(raw []byte) (map[uuid.UUID]cart.Entry, error) {
	var entries map[uuid.UUID]cart.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, fmt.Errorf("cart value is not an object")
	}
	for id, e := range entries {
		if e.Quantity < 1 {
			return nil, fmt.Errorf("cart entry %s has non-positive quantity", id)
		}
	}
	return entries, nil
}
