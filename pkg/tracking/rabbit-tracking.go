package tracking

import (
	"log"
	"net/http"
	"time"

	"github.com/grochain/listing-finder/pkg/messaging"
	"github.com/grochain/listing-finder/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const trackingPrefix = "grochain"

type RabbitTracking struct {
	context    string
	connection *amqp.Connection
	publisher  *messaging.Publisher
}

func NewRabbitTracking(url, context string) (*RabbitTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	publisher, err := messaging.NewPublisher(conn, trackingPrefix, messaging.Tracking)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitTracking{
		context:    context,
		connection: conn,
		publisher:  publisher,
	}, nil
}

func (t *RabbitTracking) Close() error {
	if err := t.publisher.Close(); err != nil {
		log.Printf("Error closing tracking channel: %v", err)
	}
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return t.publisher.Send(data)
}

func (t *RabbitTracking) baseEvent(sessionId string, event uint16) *BaseEvent {
	return &BaseEvent{
		SessionId: sessionId,
		Context:   t.context,
		Event:     event,
		Timestamp: time.Now().UnixMilli(),
	}
}

func clientIp(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	err := t.send(&Session{
		BaseEvent: t.baseEvent(sessionId, SessionEvent),
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        clientIp(r),
	})
	if err != nil {
		log.Printf("Error sending session event: %v", err)
	}
}

func (t *RabbitTracking) TrackDiscovery(sessionId string, event types.DiscoveryEvent, r *http.Request) {
	err := t.send(&Discovery{
		BaseEvent:      t.baseEvent(sessionId, DiscoveryEvent),
		DiscoveryEvent: event,
		Referer:        r.Header.Get("Referer"),
	})
	if err != nil {
		log.Printf("Error sending discovery event: %v", err)
	}
}
