package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for different data types
	DatasetCache *cache.Cache
	ChartCache   *cache.Cache
)

const (
	// Cleanup intervals
	datasetCleanupInterval = 5 * time.Minute
	chartCleanupInterval   = 5 * time.Minute
)

// InitCache builds the dataset and chart caches. Entries expire quickly:
// the source files are re-read once an entry lapses, so edits to the data
// files show up without a restart.
func InitCache() {
	datasetTTL := time.Duration(getEnvAsInt("DATASET_CACHE_SECONDS", 30)) * time.Second
	chartTTL := time.Duration(getEnvAsInt("CHART_CACHE_SECONDS", 30)) * time.Second

	DatasetCache = cache.New(datasetTTL, datasetCleanupInterval)
	ChartCache = cache.New(chartTTL, chartCleanupInterval)
}

func ClearAllCaches() {
	DatasetCache.Flush()
	ChartCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
