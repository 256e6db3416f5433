package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits checkout events on a topic exchange. A nil Publisher is
// valid and drops events, so checkout never depends on the broker.
type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = ch.ExchangeDeclare(EventsExchange, "topic", true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) PublishCartCheckedOut(evt CartCheckedOut) {
	if p == nil {
		return
	}
	evt.EventType = "CartCheckedOut"
	evt.Timestamp = time.Now().UTC()

	body, err := json.Marshal(evt)
	if err != nil {
		log.Printf("⚠️ failed to marshal checkout event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, EventsExchange, CartCheckedOutRoutingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("⚠️ failed to publish checkout event: %v", err)
	}
}
