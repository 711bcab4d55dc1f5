package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrDeliveriesClosed = errors.New("delivery channel closed")

type CampaignEventHandler interface {
	HandleCampaignEvent(ctx context.Context, ev CampaignEvent) error
}

type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	ch      Consumer
	handler CampaignEventHandler
	log     *zap.Logger
}

func NewWorker(ch Consumer, handler CampaignEventHandler, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{ch: ch, handler: handler, log: log}
}

// Start consumes queueName with manual acks until ctx is cancelled or the
// broker closes the delivery channel.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", queueName, err)
	}

	w.log.Info("worker consuming", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var ev CampaignEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		w.log.Error("invalid campaign event payload", zap.Error(err), zap.ByteString("body", d.Body))
		w.nack(d)
		return
	}

	log := w.log.With(zap.String("campaign_id", ev.CampaignID), zap.String("lead_id", ev.LeadID))
	if err := w.handler.HandleCampaignEvent(ctx, ev); err != nil {
		log.Error("campaign event handler failed", zap.Error(err))
		w.nack(d)
		return
	}

	if err := d.Ack(false); err != nil {
		log.Error("ack failed", zap.Error(err))
		return
	}
	log.Debug("campaign event processed")
}

// nack drops the delivery into the dead-letter queue.
func (w *Worker) nack(d amqp.Delivery) {
	if err := d.Nack(false, false); err != nil {
		w.log.Error("nack failed", zap.Error(err))
	}
}
