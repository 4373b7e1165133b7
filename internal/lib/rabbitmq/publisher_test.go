package rabbitmq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ChannelMock struct {
	mock.Mock
}

func (m *ChannelMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublishMessage(t *testing.T) {
	msg := map[string]any{"email": "john@example.com"}

	tests := []struct {
		name        string
		message     any
		publishErr  error
		wantPublish bool
		wantErr     bool
	}{
		{name: "success", message: msg, wantPublish: true},
		{name: "broker error", message: msg, publishErr: errors.New("channel closed"), wantPublish: true, wantErr: true},
		{name: "marshal error", message: struct{ Ch chan int }{Ch: make(chan int)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := new(ChannelMock)
			if tt.wantPublish {
				ch.On("Publish", Exchange, RoutingKeyMembershipExpiring, false, false,
					mock.MatchedBy(func(p amqp.Publishing) bool {
						var got map[string]any
						return p.ContentType == "application/json" &&
							p.DeliveryMode == amqp.Persistent &&
							json.Unmarshal(p.Body, &got) == nil &&
							got["email"] == "john@example.com"
					})).Return(tt.publishErr).Once()
			}

			err := PublishMessage(ch, Exchange, RoutingKeyMembershipExpiring, tt.message)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
			} else {
				require.NoError(t, err)
			}
			ch.AssertExpectations(t)
		})
	}
}
