package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func seedAllKeys(c Cache) {
	c.Set(ProductListKey(1, ""), []byte("x"), time.Minute)
	c.Set(ProductListKey(2, "q"), []byte("x"), time.Minute)
	c.Set(ProductDetailKey("p1"), []byte("x"), time.Minute)
	c.Set(ProductDetailKey("p2"), []byte("x"), time.Minute)
	c.Set(MarketListKey(1), []byte("x"), time.Minute)
	c.Set(MarketDetailKey("m1"), []byte("x"), time.Minute)
	c.Set(CategoryListKey(), []byte("x"), time.Minute)
	c.Set(CategoryDetailKey("c1"), []byte("x"), time.Minute)
	c.Set(CategoryDetailKey("c2"), []byte("x"), time.Minute)
}

func missing(t *testing.T, c Cache, key string) {
	t.Helper()
	_, ok := c.Get(key)
	assert.False(t, ok, "expected %s to be evicted", key)
}

func present(t *testing.T, c Cache, key string) {
	t.Helper()
	_, ok := c.Get(key)
	assert.True(t, ok, "expected %s to survive", key)
}

func TestInvalidateProduct(t *testing.T) {
	c := NewMemoryCache()
	seedAllKeys(c)

	NewInvalidator(c).Product("p1")

	missing(t, c, ProductListKey(1, ""))
	missing(t, c, ProductListKey(2, "q"))
	missing(t, c, ProductDetailKey("p1"))
	present(t, c, ProductDetailKey("p2"))
	present(t, c, MarketListKey(1))
	present(t, c, CategoryListKey())
}

func TestInvalidateMarket(t *testing.T) {
	c := NewMemoryCache()
	seedAllKeys(c)

	NewInvalidator(c).Market("m1")

	missing(t, c, MarketListKey(1))
	missing(t, c, MarketDetailKey("m1"))
	present(t, c, ProductListKey(1, ""))
	present(t, c, ProductDetailKey("p1"))
}

func TestInvalidateCategory(t *testing.T) {
	c := NewMemoryCache()
	seedAllKeys(c)

	NewInvalidator(c).Category("c1")

	missing(t, c, CategoryListKey())
	missing(t, c, CategoryDetailKey("c1"))
	present(t, c, CategoryDetailKey("c2"))
}

func TestInvalidateSubCategoryTouchesOnlyParentDetail(t *testing.T) {
	c := NewMemoryCache()
	seedAllKeys(c)

	NewInvalidator(c).SubCategory("c1")

	missing(t, c, CategoryDetailKey("c1"))
	present(t, c, CategoryListKey())
	present(t, c, CategoryDetailKey("c2"))
	present(t, c, ProductListKey(1, ""))
}
