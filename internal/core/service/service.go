// Package service holds the business logic: the order lifecycle engine
// and the per-entity CRUD services. Services depend only on the ports
// package; adapters are injected by cmd/server.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodcourt/internal/core/ports"
	"foodcourt/internal/journal"
)

// List responses are cached under one key per entity type and the key is
// deleted on any mutation of that entity. The keys (including the odd
// singular "category_all") and the 60s TTL are part of the wire contract
// with existing consumers.
const (
	keyRestaurantsAll = "restaurants_all"
	keyCategoriesAll  = "category_all"
	keyMenusAll       = "menus_all"
	keyOrdersAll      = "orders_all"

	listCacheTTL = 60 * time.Second
)

// notifier bundles the fire-and-forget side effects mutations share:
// publishing the change event and journaling it locally. Neither failure
// surfaces to the caller; the primary mutation's success is authoritative.
type notifier struct {
	publisher ports.Publisher
	journal   journal.Repository // nil-safe: journaling skipped if nil
}

func (n *notifier) publish(ctx context.Context, queue, action, entityID string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal event", "queue", queue, "action", action, "error", err)
		return
	}

	if n.journal != nil {
		if err := n.journal.Save(ctx, journal.NewEntry(ctx, queue, action, entityID, string(body))); err != nil {
			slog.ErrorContext(ctx, "failed to journal event", "queue", queue, "action", action, "error", err)
		}
	}

	if err := n.publisher.Publish(ctx, queue, body); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "queue", queue, "action", action, "error", err)
	}
}

// invalidate drops a list-cache key, best-effort.
func invalidate(ctx context.Context, cache ports.Cache, key string) {
	if err := cache.Delete(ctx, key); err != nil {
		slog.ErrorContext(ctx, "failed to invalidate cache", "key", key, "error", err)
	}
}

// cachedList serves a list read through the cache: on a hit the cached
// JSON is decoded into out; on a miss load is called and its result is
// cached for listCacheTTL. Cache failures fall back to the store.
func cachedList[T any](ctx context.Context, cache ports.Cache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if raw, err := cache.Get(ctx, key); err != nil {
		slog.ErrorContext(ctx, "cache read failed", "key", key, "error", err)
	} else if raw != "" {
		var out []T
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out, nil
		}
		slog.ErrorContext(ctx, "discarding undecodable cache entry", "key", key)
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if body, err := json.Marshal(out); err == nil {
		if err := cache.Set(ctx, key, string(body), listCacheTTL); err != nil {
			slog.ErrorContext(ctx, "cache write failed", "key", key, "error", err)
		}
	}
	return out, nil
}
