package notify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev model.Event
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		require.Equal(t, int64(3), ev.UserID)
		require.Equal(t, model.EventDueReminder, ev.Type)
		return nil
	})

	p := NewKafkaPublisher(producer, "library.notifications")
	err := p.Publish(context.Background(), model.Event{Type: model.EventDueReminder, UserID: 3})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestKafkaPublisher_Error(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewKafkaPublisher(producer, "library.notifications")
	err := p.Publish(context.Background(), model.Event{UserID: 1})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}
