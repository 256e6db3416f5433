package cache

import "fmt"

// Cache keys live in one place so the naming scheme cannot drift between
// the read services and the invalidation rules.

func ProductListKey(page int, query string) string {
	return fmt.Sprintf("product:list:%d:%s", page, query)
}

func ProductDetailKey(productID string) string {
	return "product:detail:" + productID
}

func MarketListKey(page int) string {
	return fmt.Sprintf("market:list:%d", page)
}

func MarketDetailKey(marketID string) string {
	return "market:detail:" + marketID
}

func CategoryListKey() string {
	return "category:list"
}

func CategoryDetailKey(categoryID string) string {
	return "category:detail:" + categoryID
}
