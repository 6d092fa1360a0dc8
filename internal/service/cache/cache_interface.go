// Package cache defines the caching contract for drug reference lookups.
package cache

import "github.com/openpdst/dst-service/internal/domain/model"

// Cache defines the interface for drug reference cache operations.
type Cache interface {
	Get(drugID string) (*model.DrugReference, bool)
	Set(drugID string, drug *model.DrugReference)
	Invalidate(drugID string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
