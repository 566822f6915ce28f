package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EngagementMessage is the bus payload bridging /track writes to the
// external event stream.
type EngagementMessage struct {
	Event     string `json:"event"`
	ProductId string `json:"product_id"`
	SessionId string `json:"session_id"`
	Ts        int64  `json:"ts"`
}

type IPublisherService interface {
	PublishEngagement(ctx context.Context, e *entity.Engagement) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) PublishEngagement(_ context.Context, e *entity.Engagement) error {
	payload, err := json.Marshal(EngagementMessage{
		Event:     string(e.Kind),
		ProductId: e.ProductId,
		SessionId: e.SessionId,
		Ts:        e.Ts,
	})
	if err != nil {
		return fmt.Errorf("marshal engagement message: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}
