package messenger

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Publisher forwards engine events onto the message queue.
type Publisher struct {
	messenger MessageService
}

func NewPublisher(messenger MessageService) *Publisher {
	return &Publisher{messenger}
}

func (p *Publisher) PublishSettlement(msg interface{}) {
	p.publish(Settlement, msg)
}

func (p *Publisher) PublishListing(msg interface{}) {
	p.publish(Listing, msg)
}

func (p *Publisher) publish(item Item, msg interface{}) {
	body, err := json.Marshal(msg)
	if err != nil {
		zap.L().With(zap.Error(err)).Error("[Queue] Failed to marshal event")
		return
	}

	if err := p.messenger.SendMessage(item, body, false); err != nil {
		zap.L().With(zap.Error(err)).Error("[Queue] Failed to publish event")
	}
}
