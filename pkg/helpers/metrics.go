package helpers

import "expvar"

// Process-wide counters published on /api/debug/vars.
var (
	upstreamCalls  = expvar.NewMap("upstream_calls")
	upstreamErrors = expvar.NewMap("upstream_errors")
	feedFallbacks  = expvar.NewMap("feed_fallbacks")
	feedCacheHits  = expvar.NewInt("feed_cache_hits")
)

// CountUpstreamCall records one upstream request for op (search.videos, videos.list, ...).
func CountUpstreamCall(op string) { upstreamCalls.Add(op, 1) }

func CountUpstreamError(op string) { upstreamErrors.Add(op, 1) }

// CountFeedFallback records a canned response served for category.
func CountFeedFallback(category string) { feedFallbacks.Add(category, 1) }

func CountFeedCacheHit() { feedCacheHits.Add(1) }
