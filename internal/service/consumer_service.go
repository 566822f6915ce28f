package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/GarvitManralDev/fitlens-backend/pkg/events"
	pktNats "github.com/GarvitManralDev/fitlens-backend/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process engagement topic and forwards each
// event to NATS JetStream for external training pipelines. It runs as a
// background worker started from main.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	natsPub   *pktNats.Publisher
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, natsPub *pktNats.Publisher) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		natsPub:   natsPub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload EngagementMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal engagement message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.natsPub == nil {
		// NATS not configured; the DB sink already has the row.
		msg.Ack()
		return
	}

	event := events.EngagementRecorded{
		Kind:       payload.Event,
		ProductId:  payload.ProductId,
		SessionId:  payload.SessionId,
		Ts:         payload.Ts,
		OccurredAt: time.Now(),
	}
	if err := cs.natsPub.Publish(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to forward engagement event to NATS: %v", err)
		msg.Nack() // Retriable
		return
	}

	msg.Ack()
}
