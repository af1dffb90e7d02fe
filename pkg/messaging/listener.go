package messaging

import (
	"log"

	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DeclareBindAndConsume binds an exclusive queue to the topic exchange so
// every replica gets its own copy of each message.
func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	if err = ch.QueueBind(q.Name, name, name, false, nil); err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// ListenToTopic acks a delivery when fn succeeds and rejects it otherwise.
func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, fn func(amqp.Delivery) error) error {
	msgs, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func(msgs <-chan amqp.Delivery) {
		defer ch.Close()
		for d := range msgs {
			if err := fn(d); err != nil {
				log.Printf("Error processing %s message: %v", topic, err)
				if nackErr := d.Nack(false, false); nackErr != nil {
					log.Printf("Failed to reject message: %v", nackErr)
				}
				continue
			}
			if ackErr := d.Ack(false); ackErr != nil {
				log.Printf("Failed to ack message: %v", ackErr)
			}
		}
	}(msgs)
	return nil
}

// DecodeJson is a helper for ListenToTopic handlers with json bodies.
func DecodeJson[V any](fn func(V) error) func(amqp.Delivery) error {
	return func(d amqp.Delivery) error {
		var v V
		if err := jsoncompat.Unmarshal(d.Body, &v); err != nil {
			return err
		}
		return fn(v)
	}
}
