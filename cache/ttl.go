package cache

import "time"

// Per-resource TTLs. Static configuration: freshness for hot resources
// comes from invalidation, not from shorter TTLs.
const (
	TTLProductList    = 2 * time.Minute
	TTLProductDetail  = 5 * time.Minute
	TTLMarketList     = 10 * time.Minute
	TTLMarketDetail   = 10 * time.Minute
	TTLCategoryList   = time.Hour
	TTLCategoryDetail = 30 * time.Minute
)
