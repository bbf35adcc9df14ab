package storage_test

import (
	"context"
	"testing"

	"go-airline-tickets/internal/model"
	"go-airline-tickets/internal/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleTickets() []model.Ticket {
	return []model.Ticket{
		{TicketID: "T001", FlightNum: "CA123", Origin: "Beijing", Destination: "Shanghai", Date: "2024-12-01", Price: 800, SeatsLeft: 10},
		{TicketID: "T002", FlightNum: "MU456", Origin: "Guangzhou", Destination: "Shenzhen", Date: "2024-12-02", Price: 300.5, SeatsLeft: 0},
		{TicketID: "T001", FlightNum: "CZ789", Origin: "北京", Destination: "上海", Date: "2024-12-03", Price: 1299.99, SeatsLeft: 3},
	}
}

// assertRoundTrip 寫入後讀回，欄位與順序需完全一致
func assertRoundTrip(t *testing.T, store storage.Storage) {
	t.Helper()
	ctx := context.Background()

	want := sampleTickets()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// 較短的資料需完整取代舊資料
	shorter := want[:1]
	shorter[0].SeatsLeft = 9
	require.NoError(t, store.Save(ctx, shorter))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(shorter, got); diff != "" {
		t.Fatalf("replace mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, store.Save(ctx, []model.Ticket{}))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
