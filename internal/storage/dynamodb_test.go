package storage_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-airline-tickets/internal/model"
	"go-airline-tickets/internal/storage"
	"go-airline-tickets/internal/testutil"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDynamoStorage(t *testing.T) *storage.DynamoStorage {
	t.Helper()
	client, table, err := testutil.SetupDynamoDB()
	if err != nil {
		t.Skipf("dynamodb not available: %v", err)
	}

	table = fmt.Sprintf("%s_%d", table, time.Now().UnixNano())
	t.Cleanup(func() {
		client.DeleteTable(&dynamodb.DeleteTableInput{TableName: aws.String(table)})
	})
	return storage.NewDynamoStorage(client, table)
}

func TestDynamoStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - missing table is an empty data set", func(t *testing.T) {
		store := setupDynamoStorage(t)

		tickets, err := store.Load(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tickets)
		assert.Empty(t, tickets)
	})

	t.Run("Success - round trip", func(t *testing.T) {
		store := setupDynamoStorage(t)
		require.NoError(t, store.EnsureTable(ctx))

		assertRoundTrip(t, store)
	})

	t.Run("Success - more tickets than one batch keep their order", func(t *testing.T) {
		store := setupDynamoStorage(t)
		require.NoError(t, store.EnsureTable(ctx))

		want := make([]model.Ticket, 60)
		for i := range want {
			want[i] = model.Ticket{
				TicketID:    fmt.Sprintf("T%03d", i),
				FlightNum:   "CA123",
				Origin:      "Beijing",
				Destination: "Shanghai",
				Date:        "2024-12-01",
				Price:       float64(100 + i),
				SeatsLeft:   i,
			}
		}
		require.NoError(t, store.Save(ctx, want))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
