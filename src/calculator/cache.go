// backend/src/calculator/cache.go
package calculator

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultCacheExpiration = 5 * time.Minute
	CacheCleanupInterval   = 10 * time.Minute
)

type cachedResult struct {
	value float64
	err   error
}

// CachedEvaluator memoizes Evaluate. The form layer re-evaluates the
// same expression on every keystroke and on blur, so identical inputs
// repeat within seconds; the cache is safe for concurrent use.
type CachedEvaluator struct {
	results *cache.Cache
}

// NewCachedEvaluator creates an evaluator with the default expiration.
func NewCachedEvaluator() *CachedEvaluator {
	return &CachedEvaluator{
		results: cache.New(DefaultCacheExpiration, CacheCleanupInterval),
	}
}

// Evaluate behaves exactly like the package-level Evaluate.
func (e *CachedEvaluator) Evaluate(expr string) (float64, error) {
	key := strings.TrimSpace(expr)
	if hit, ok := e.results.Get(key); ok {
		r := hit.(cachedResult)
		return r.value, r.err
	}
	v, err := Evaluate(expr)
	e.results.Set(key, cachedResult{value: v, err: err}, cache.DefaultExpiration)
	return v, err
}
