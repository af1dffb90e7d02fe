package messaging

import (
	"fmt"
	"sync"

	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefineTopic declares the durable topic exchange of topic. Listeners bind
// their own queues to it.
func DefineTopic(ch *amqp.Channel, prefix string, topic ChangeTopic) error {
	name := getName(prefix, topic)
	return ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	)
}

func getName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

func publishJson(ch *amqp.Channel, name string, data any) error {
	body, err := jsoncompat.Marshal(data)
	if err != nil {
		return err
	}
	return ch.Publish(
		name,
		name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Publisher sends to one topic over a channel it keeps open, reopening it
// after the broker closes it.
type Publisher struct {
	conn *amqp.Connection
	name string
	mu   sync.Mutex
	ch   *amqp.Channel
}

func NewPublisher(c *amqp.Connection, prefix string, topic ChangeTopic) (*Publisher, error) {
	p := &Publisher{conn: c, name: getName(prefix, topic)}
	ch, err := p.channel()
	if err != nil {
		return nil, err
	}
	if err := DefineTopic(ch, prefix, topic); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	p.ch = ch
	return ch, nil
}

func (p *Publisher) Send(data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch, err := p.channel()
	if err != nil {
		return err
	}
	return publishJson(ch, p.name, data)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}
	return p.ch.Close()
}
