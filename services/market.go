package services

import "github.com/amirhosin100/AmirShop/cache"

type MarketService struct {
	cache cache.Cache
}

func NewMarketService(c cache.Cache) *MarketService {
	return &MarketService{cache: c}
}

func (s *MarketService) LoadMarketList(page int) ([]byte, bool) {
	return s.cache.Get(cache.MarketListKey(page))
}

func (s *MarketService) SaveMarketList(data []byte, page int) {
	s.cache.Set(cache.MarketListKey(page), data, cache.TTLMarketList)
}

func (s *MarketService) LoadMarketDetail(marketID string) ([]byte, bool) {
	return s.cache.Get(cache.MarketDetailKey(marketID))
}

func (s *MarketService) SaveMarketDetail(data []byte, marketID string) {
	s.cache.Set(cache.MarketDetailKey(marketID), data, cache.TTLMarketDetail)
}
