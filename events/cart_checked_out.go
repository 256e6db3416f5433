package events

import "time"

type CartCheckedOut struct {
	EventType  string          `json:"eventType"`
	CartInfoID string          `json:"cartInfoId"`
	UserID     string          `json:"userId"`
	Items      []CartItemEvent `json:"items"`
	Amount     uint            `json:"amount"`
	Timestamp  time.Time       `json:"timestamp"`
}

type CartItemEvent struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	FinalPrice uint   `json:"finalPrice"`
}
