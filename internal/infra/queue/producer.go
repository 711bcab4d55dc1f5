package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CampaignEvent is emitted once per email that left the SMTP server.
type CampaignEvent struct {
	CampaignID string    `json:"campaign_id"`
	LeadID     string    `json:"lead_id"`
	SupplierID string    `json:"supplier_id"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	SentAt     time.Time `json:"sent_at"`
}

type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{ch: ch}
}

func (p *RabbitMQProducer) PublishCampaignEvent(ctx context.Context, ev CampaignEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal campaign event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.CampaignID,
			Timestamp:    ev.SentAt,
		},
	)
	if err != nil {
		return fmt.Errorf("publish campaign event: %w", err)
	}
	return nil
}
