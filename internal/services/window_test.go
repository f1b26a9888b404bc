package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderankeFromMonthWeek(t *testing.T) {
	assert.Equal(t, 101, OrderankeFromMonthWeek(10, 1))
	assert.Equal(t, 63, OrderankeFromMonthWeek(6, 3))
	assert.Equal(t, 124, OrderankeFromMonthWeek(12, 4))
}

func TestResolveOrderankeExplicitSkipsStore(t *testing.T) {
	// Store kosong total: kalau resolver sampai query, pasti gagal
	svc := newTestService(newFakeStore())

	orderanke, err := svc.ResolveOrderanke(55)
	assert.NoError(t, err)
	assert.Equal(t, 55, orderanke)
}

func TestResolveOrderankeFromActiveWindow(t *testing.T) {
	store := newFakeStore()
	store.window = activeWindow(123)
	svc := newTestService(store)

	orderanke, err := svc.ResolveOrderanke(0)
	assert.NoError(t, err)
	assert.Equal(t, 123, orderanke)
}

func TestResolveOrderankeNoActiveWindow(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.ResolveOrderanke(0)
	assert.ErrorIs(t, err, ErrNoActiveWindow)
}
