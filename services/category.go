package services

import "github.com/amirhosin100/AmirShop/cache"

type CategoryService struct {
	cache cache.Cache
}

func NewCategoryService(c cache.Cache) *CategoryService {
	return &CategoryService{cache: c}
}

func (s *CategoryService) LoadCategoryList() ([]byte, bool) {
	return s.cache.Get(cache.CategoryListKey())
}

func (s *CategoryService) SaveCategoryList(data []byte) {
	s.cache.Set(cache.CategoryListKey(), data, cache.TTLCategoryList)
}

func (s *CategoryService) LoadCategoryDetail(categoryID string) ([]byte, bool) {
	return s.cache.Get(cache.CategoryDetailKey(categoryID))
}

func (s *CategoryService) SaveCategoryDetail(data []byte, categoryID string) {
	s.cache.Set(cache.CategoryDetailKey(categoryID), data, cache.TTLCategoryDetail)
}
