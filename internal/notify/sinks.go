package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Store persists events as admin notifications.
type Store interface {
	Create(ctx context.Context, ev Event) error
}

type StoreSink struct {
	store Store
}

func NewStoreSink(store Store) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) Deliver(ctx context.Context, ev Event) error {
	return s.store.Create(ctx, ev)
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSink texts the customer for events that carry a phone number.
type SMSSink struct {
	api  messageCreator
	from string
}

func NewTwilioSink(accountSID, authToken, from string) *SMSSink {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSSink{api: client.Api, from: from}
}

func (s *SMSSink) Deliver(_ context.Context, ev Event) error {
	if ev.SMSTo == "" || ev.SMSBody == "" {
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(ev.SMSTo)
	params.SetFrom(s.from)
	params.SetBody(ev.SMSBody)

	if _, err := s.api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}
