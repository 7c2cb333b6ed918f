// Package rabbitmq implements ports.Publisher on an AMQP connection.
//
// Events go straight to two durable queues (menu_updates, order_updates)
// through the default exchange, with persistent delivery. Delivery is
// at-least-once; consumers must tolerate duplicates.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

// Publisher implements ports.Publisher.
type Publisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ ports.Publisher = (*Publisher)(nil)

// Dial connects to the broker and declares the two update queues.
func Dial(url string) (*Publisher, error) {
	p := &Publisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial %s: %w", p.url, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	for _, queue := range []string{domain.QueueMenuUpdates, domain.QueueOrderUpdates} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("rabbitmq: declare queue %s: %w", queue, err)
		}
	}

	p.conn = conn
	p.ch = ch
	return nil
}

// Publish sends body to the named queue via the default exchange. A
// closed connection is redialed once before giving up.
func (p *Publisher) Publish(ctx context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return fmt.Errorf("rabbitmq: reconnect: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := p.ch.PublishWithContext(ctx,
		"",    // default exchange routes by queue name
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("rabbitmq: publish to %s: %w", queue, err)
	}
	return nil
}

// Close shuts the channel and connection down.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
