package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcosboni7/backsleeping/internal/adapter"
	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/mocks"
)

func newTestPublisher(t *testing.T) (*mocks.MockJetStream, Publisher) {
	ctrl := gomock.NewController(t)

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)

	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nc, js, nil)
	js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), jetstream.StreamConfig{
			Name:     "CHAT_EVENTS",
			Subjects: []string{"chat.>"},
		}).
		Return(nil)

	pub, err := NewNATSPublisher(context.Background(), Config{
		URL:        "nats://localhost:4222",
		StreamName: "CHAT_EVENTS",
	}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	return js, pub
}

func TestPublishChatMessage(t *testing.T) {
	js, pub := newTestPublisher(t)

	sender := int64(7)
	event := &domain.ChatEvent{
		Room:      "global",
		Username:  "alice",
		Text:      "hello",
		SenderID:  &sender,
		Timestamp: time.Now(),
	}

	js.EXPECT().
		Publish(gomock.Any(), "chat.room.global", gomock.Any()).
		Return(&jetstream.PubAck{}, nil)

	assert.NoError(t, pub.PublishChatMessage(context.Background(), event))
}

func TestPublishChatMessageError(t *testing.T) {
	js, pub := newTestPublisher(t)

	js.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("broker down"))

	err := pub.PublishChatMessage(context.Background(), &domain.ChatEvent{Room: "global"})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	pub := NewNoopPublisher()
	assert.NoError(t, pub.PublishChatMessage(context.Background(), &domain.ChatEvent{Room: "global"}))
	pub.Close()
}
