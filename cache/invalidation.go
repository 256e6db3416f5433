package cache

// Invalidator evicts the cache entries a write made stale. Controllers call
// it right after the entity write commits; eviction failures are logged by
// the backend and never roll the write back.
type Invalidator struct {
	cache Cache
}

func NewInvalidator(c Cache) *Invalidator {
	return &Invalidator{cache: c}
}

// Product evicts every cached product list page/query and the detail entry.
func (inv *Invalidator) Product(productID string) {
	inv.cache.DeletePrefix("product:list")
	inv.cache.Delete(ProductDetailKey(productID))
}

// Market evicts every cached market list page and the detail entry.
func (inv *Invalidator) Market(marketID string) {
	inv.cache.DeletePrefix("market:list")
	inv.cache.Delete(MarketDetailKey(marketID))
}

// Category evicts the category list and the category's detail entry.
func (inv *Invalidator) Category(categoryID string) {
	inv.cache.Delete(CategoryListKey())
	inv.cache.Delete(CategoryDetailKey(categoryID))
}

// SubCategory evicts only the parent category's detail entry; the list does
// not embed subcategories.
func (inv *Invalidator) SubCategory(parentCategoryID string) {
	inv.cache.Delete(CategoryDetailKey(parentCategoryID))
}
