package services

import "github.com/amirhosin100/AmirShop/cache"

// ProductService memoizes serialized product list pages and detail views.
// Controllers query the database on a miss and save the result back here,
// so a response looks the same whether it was cached or computed fresh.
type ProductService struct {
	cache cache.Cache
}

func NewProductService(c cache.Cache) *ProductService {
	return &ProductService{cache: c}
}

func (s *ProductService) LoadProductList(page int, query string) ([]byte, bool) {
	return s.cache.Get(cache.ProductListKey(page, query))
}

func (s *ProductService) SaveProductList(data []byte, page int, query string) {
	s.cache.Set(cache.ProductListKey(page, query), data, cache.TTLProductList)
}

func (s *ProductService) LoadProductDetail(productID string) ([]byte, bool) {
	return s.cache.Get(cache.ProductDetailKey(productID))
}

func (s *ProductService) SaveProductDetail(data []byte, productID string) {
	s.cache.Set(cache.ProductDetailKey(productID), data, cache.TTLProductDetail)
}
