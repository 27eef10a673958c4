package kafka

import (
	"testing"
	"time"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestEncodeOrderEvent(t *testing.T) {
	event := domain.NewOrderEvent(domain.OrderPaid, "65f0c0ffee0000000000abcd")
	event.Customer = "a@b.com"
	event.Status = domain.OrderStatusPending
	event.TransactionID = "tx-1"
	event.Amount = 1250
	event.OccurredAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	data, err := EncodeOrderEvent(event)
	require.NoError(t, err)

	var decoded structpb.Struct
	require.NoError(t, proto.Unmarshal(data, &decoded))

	fields := decoded.AsMap()
	assert.Equal(t, "order.paid", fields["type"])
	assert.Equal(t, "65f0c0ffee0000000000abcd", fields["orderId"])
	assert.Equal(t, "pending", fields["status"])
	assert.Equal(t, "tx-1", fields["transactionId"])
	assert.Equal(t, float64(1250), fields["amount"])
	assert.Equal(t, "2024-03-01T12:00:00Z", fields["occurredAt"])
	assert.NotEmpty(t, fields["eventId"])
}
