package events

import (
	"log"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange           = "marketplace.events"
	CartCheckedOutRoutingKey = "cart.checkedout.v1"
)

// Dial connects to RabbitMQ using RABBITMQ_URL. Returns nil when no broker
// is configured; callers treat a nil connection as "events disabled".
func Dial() *amqp.Connection {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		log.Println("⚠️ RABBITMQ_URL not set, checkout events disabled")
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("⚠️ failed to connect to RabbitMQ: %v", err)
		return nil
	}
	return conn
}
