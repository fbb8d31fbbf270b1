package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/kafka"
)

type event struct {
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "b-1", Value: event{Type: "booking.created", BookingID: "b-1"}}

	kafkaMsg, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("b-1"), kafkaMsg.Key)
	assert.JSONEq(t, `{"type":"booking.created","bookingId":"b-1"}`, string(kafkaMsg.Value))

	key, decoded, err := kafka.DecodeKafkaMessage[event](kafkaMsg)
	require.NoError(t, err)
	assert.Equal(t, "b-1", key)
	assert.Equal(t, "booking.created", decoded.Type)
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}
