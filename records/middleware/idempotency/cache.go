package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/records/model"
)

// IdempotencyCluster is the cache cluster for idempotency
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache stores one entry per endpoint and idempotency key.
// Switches retry call-event delivery within minutes, so a 24 hour expiry
// comfortably covers the redelivery window.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
