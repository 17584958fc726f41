package kafka_test

import (
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/infras/kafka"
)

type payload struct {
	Purpose string   `json:"purpose"`
	To      []string `json:"to"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: payload{Purpose: "NEW_INQUIRY", To: []string{"a@example.com"}}}

	encoded, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), encoded.Key)

	decoded, err := kafka.Decode[payload](encoded)
	require.NoError(t, err)
	assert.Equal(t, "NEW_INQUIRY", decoded.Purpose)
	assert.Equal(t, []string{"a@example.com"}, decoded.To)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}
