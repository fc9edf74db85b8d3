package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AppointmentsFIFO(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, ok, err := r.PeekAppointment(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	length, err := r.EnqueueAppointment(ctx, "Asha")
	require.NoError(t, err)
	assert.Equal(t, 1, length)
	length, err = r.EnqueueAppointment(ctx, "Ravi")
	require.NoError(t, err)
	assert.Equal(t, 2, length)

	front, ok, err := r.PeekAppointment(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Asha", front)

	served, ok, remaining, err := r.DequeueAppointment(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Asha", served)
	assert.Equal(t, 1, remaining)

	front, _, _ = r.PeekAppointment(ctx)
	assert.Equal(t, "Ravi", front)

	_, _, _, _ = r.DequeueAppointment(ctx)
	_, ok, remaining, err = r.DequeueAppointment(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestRepository_WaitingListIsIndependent(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, err := r.EnqueueAppointment(ctx, "Asha")
	require.NoError(t, err)
	_, err = r.JoinWaitingList(ctx, "WaitingCustomer1")
	require.NoError(t, err)
	length, err := r.JoinWaitingList(ctx, "WaitingCustomer2")
	require.NoError(t, err)
	assert.Equal(t, 2, length)

	first, ok, err := r.PeekWaitingList(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "WaitingCustomer1", first)

	_, _, _, _ = r.DequeueAppointment(ctx)

	// Очередь опустела, но из листа ожидания никто не переведен
	_, ok, _ = r.PeekAppointment(ctx)
	assert.False(t, ok)

	left, ok, remaining, err := r.LeaveWaitingList(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "WaitingCustomer1", left)
	assert.Equal(t, 1, remaining)

	appointments, waiting, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)
	assert.Equal(t, []string{"WaitingCustomer2"}, waiting)
}

func TestRepository_CancelAppointmentRemovesLatestEntry(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	for _, name := range []string{"Asha", "Ravi", "Asha", "Meera"} {
		_, err := r.EnqueueAppointment(ctx, name)
		require.NoError(t, err)
	}

	removed, remaining, err := r.CancelAppointment(ctx, "Asha")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 3, remaining)

	appointments, _, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Asha", "Ravi", "Meera"}, appointments)

	removed, remaining, err = r.CancelAppointment(ctx, "Nobody")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 3, remaining)
}

func TestRepository_CancelAppointmentIgnoresServedCustomers(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, err := r.EnqueueAppointment(ctx, "Asha")
	require.NoError(t, err)
	_, _, _, err = r.DequeueAppointment(ctx)
	require.NoError(t, err)

	removed, remaining, err := r.CancelAppointment(ctx, "Asha")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 0, remaining)
}

func TestRepository_ConcurrentEnqueue(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := r.EnqueueAppointment(ctx, fmt.Sprintf("c%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	appointments, _, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, appointments, n)
}

func TestFifo_CompactsAfterManyPops(t *testing.T) {
	var q fifo
	for i := 0; i < 200; i++ {
		q.push(fmt.Sprintf("c%d", i))
	}
	for i := 0; i < 150; i++ {
		v, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("c%d", i), v)
	}

	assert.Equal(t, 50, q.len())
	v, ok := q.peek()
	require.True(t, ok)
	assert.Equal(t, "c150", v)
	assert.Less(t, q.head, 150)
}
