package memcache_fx

import (
	"go.uber.org/fx"

	"planora/pkg/memcache"
)

var Module = fx.Provide(
	provideTTLCache)

// One shared cache instance; weather and hotel lookups key-space themselves.
func provideTTLCache() *memcache.TTLCache {
	return memcache.NewTTLCache()
}
