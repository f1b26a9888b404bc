package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rage-order-backend/internal/models"
)

// fakeStore implementasi OrderStore in-memory untuk test.
type fakeStore struct {
	members map[int64]*models.Member
	window  *models.OrderWindow
	vestQty map[string]int // key: "nama|orderanke"
	itemQty map[string]int // key: "orderanke|NAMA NORMAL"

	inserted []models.Order

	storeErr  error // kalau di-set, semua query gagal
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		members: map[int64]*models.Member{},
		vestQty: map[string]int{},
		itemQty: map[string]int{},
	}
}

func (f *fakeStore) MemberByID(id int64) (*models.Member, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return f.members[id], nil
}

func (f *fakeStore) ActiveWindow(now time.Time) (*models.OrderWindow, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return f.window, nil
}

func (f *fakeStore) VestQty(nama string, orderanke int) (int, error) {
	if f.storeErr != nil {
		return 0, f.storeErr
	}
	return f.vestQty[fmt.Sprintf("%s|%d", nama, orderanke)], nil
}

func (f *fakeStore) ItemQty(orderanke int, normName string) (int, error) {
	if f.storeErr != nil {
		return 0, f.storeErr
	}
	return f.itemQty[fmt.Sprintf("%d|%s", orderanke, normName)], nil
}

func (f *fakeStore) InsertOrders(rows []models.Order) ([]models.Order, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, rows...)
	return rows, nil
}

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestService(store *fakeStore) *SubmissionService {
	svc := NewSubmissionService(store)
	svc.now = func() time.Time { return testNow }
	return svc
}

func activeWindow(orderanke int) *models.OrderWindow {
	return &models.OrderWindow{
		Orderanke: orderanke,
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(time.Hour),
		IsActive:  true,
	}
}

func intPtr(n int) *int { return &n }

func TestSubmitAccepted(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	svc := newTestService(store)

	rows, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items: []models.OrderItemInput{
			{ItemName: "Vest Medium", Qty: 3, Harga: 10},
		},
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Vest Medium", rows[0].Item)
	assert.Equal(t, 3, rows[0].Qty)
	assert.Equal(t, 30.0, rows[0].Subtotal)
	assert.Equal(t, 101, rows[0].Orderanke)
	assert.Equal(t, "Rex", rows[0].Nama)
	assert.Equal(t, int64(1), rows[0].MemberID)
	assert.Equal(t, testNow, rows[0].Waktu)
	assert.NotEmpty(t, rows[0].OrderID)
	assert.Len(t, store.inserted, 1)
}

func TestSubmitSubtotalSum(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	svc := newTestService(store)

	items := []models.OrderItemInput{
		{ItemName: "Kaos", Qty: 2, Harga: 7.5},
		{ItemName: "Topi", Qty: 1, Harga: 3},
		{ItemName: "Stiker", Qty: 0, Harga: 99}, // qty 0 -> dibuang, tidak ikut hitung
		{ItemName: "Gelas", Qty: 4, Harga: 2.25},
	}

	rows, err := svc.Submit(models.SubmitOrderInput{MemberID: 1, Items: items})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	var got float64
	for _, r := range rows {
		got += r.Subtotal
	}
	assert.Equal(t, 2*7.5+1*3+4*2.25, got)

	// Semua row satu submission share order_id yang sama
	for _, r := range rows {
		assert.Equal(t, rows[0].OrderID, r.OrderID)
	}
	// Urutan item dipertahankan
	assert.Equal(t, []string{"Kaos", "Topi", "Gelas"}, []string{rows[0].Item, rows[1].Item, rows[2].Item})
}

func TestSubmitVestLimitExceeded(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	store.vestQty["Rex|101"] = 4
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "VEST", Qty: 2, Harga: 10}},
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
	assert.Equal(t, "Maksimal VEST per orang 5. Tersisa 1.", svcErr.Message)
	assert.Empty(t, store.inserted)
}

func TestSubmitVestLimitExactCapAccepted(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	store.vestQty["Rex|101"] = 3
	svc := newTestService(store)

	// 3 existing + 2 baru = pas 5, masih boleh
	rows, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "Vest Medium", Qty: 2, Harga: 10}},
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSubmitVestLimitRemainingNeverNegative(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	store.vestQty["Rex|101"] = 7 // sudah lewat cap (data lama)
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "VEST", Qty: 1, Harga: 10}},
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Maksimal VEST per orang 5. Tersisa 0.", svcErr.Message)
}

func TestSubmitHangaroundRejected(t *testing.T) {
	store := newFakeStore()
	store.members[2] = &models.Member{ID: 2, Nama: "Doni", IsHangaround: true}
	store.window = activeWindow(101)
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 2,
		Items:    []models.OrderItemInput{{ItemName: "Vest Small", Qty: 1, Harga: 10}},
	})

	assert.ErrorIs(t, err, ErrHangaroundVest)
	assert.Empty(t, store.inserted)
}

func TestSubmitHangaroundVestMediumAccepted(t *testing.T) {
	store := newFakeStore()
	store.members[2] = &models.Member{ID: 2, Nama: "Doni", IsHangaround: true}
	store.window = activeWindow(101)
	svc := newTestService(store)

	rows, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 2,
		Items: []models.OrderItemInput{
			{ItemName: "Vest Medium", Qty: 1, Harga: 10},
			{ItemName: "Stiker", Qty: 2, Harga: 1}, // non-vest bebas untuk hangaround
		},
	})

	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSubmitNoActiveWindow(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "Kaos", Qty: 1, Harga: 5}},
	})

	assert.ErrorIs(t, err, ErrNoActiveWindow)
}

func TestSubmitExplicitOrderankeTrusted(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	// Tidak ada window aktif sama sekali, tapi orderanke eksplisit dipercaya
	svc := newTestService(store)

	rows, err := svc.Submit(models.SubmitOrderInput{
		MemberID:  1,
		Orderanke: 99,
		Items:     []models.OrderItemInput{{ItemName: "Kaos", Qty: 1, Harga: 5}},
	})

	require.NoError(t, err)
	assert.Equal(t, 99, rows[0].Orderanke)
}

func TestSubmitItemLimitExceeded(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	store.itemQty["101|KAOS POLOS"] = 2
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "Kaos Polos", Qty: 1, Harga: 5, MaxQty: intPtr(2)}},
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
	assert.Equal(t, "Maks Kaos Polos 2. Tersisa 0.", svcErr.Message)
}

func TestSubmitItemLimitSumsDuplicateNames(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	svc := newTestService(store)

	// "kaos  polos" dan "Kaos Polos" nama normalnya sama,
	// qty-nya digabung saat cek maxQty
	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items: []models.OrderItemInput{
			{ItemName: "kaos  polos", Qty: 2, Harga: 5},
			{ItemName: "Kaos Polos", Qty: 2, Harga: 5, MaxQty: intPtr(3)},
		},
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Maks Kaos Polos 3. Tersisa 3.", svcErr.Message)
}

func TestSubmitItemLimitWithinCapAccepted(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	store.itemQty["101|KAOS POLOS"] = 1
	svc := newTestService(store)

	rows, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "Kaos Polos", Qty: 1, Harga: 5, MaxQty: intPtr(2)}},
	})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSubmitEmptyItems(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	svc := newTestService(store)

	// Semua item gugur di filter: qty 0 atau nama kosong
	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items: []models.OrderItemInput{
			{ItemName: "Kaos", Qty: 0, Harga: 5},
			{ItemName: "   ", Qty: 2, Harga: 5},
		},
	})

	assert.ErrorIs(t, err, ErrEmptyItems)
	assert.Empty(t, store.inserted)
}

func TestSubmitInvalidMemberID(t *testing.T) {
	store := newFakeStore()
	store.window = activeWindow(101)
	svc := newTestService(store)

	for _, id := range []int64{0, -1} {
		_, err := svc.Submit(models.SubmitOrderInput{
			MemberID: id,
			Items:    []models.OrderItemInput{{ItemName: "Kaos", Qty: 1, Harga: 5}},
		})
		assert.ErrorIs(t, err, ErrInvalidMemberID, "memberId %d", id)
	}
}

func TestSubmitMemberNotFound(t *testing.T) {
	store := newFakeStore()
	store.window = activeWindow(101)
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 42,
		Items:    []models.OrderItemInput{{ItemName: "Kaos", Qty: 1, Harga: 5}},
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestSubmitItemIDFallback(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	svc := newTestService(store)

	rows, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemID: " SKU-77 ", Qty: 1, Harga: 5}},
	})

	require.NoError(t, err)
	assert.Equal(t, "SKU-77", rows[0].Item)
}

func TestSubmitStoreFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.storeErr = errors.New("connection refused")
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "Kaos", Qty: 1, Harga: 5}},
	})

	require.Error(t, err)
	var svcErr *Error
	assert.False(t, errors.As(err, &svcErr), "error store tidak boleh dibungkus jadi error bisnis")
	assert.Equal(t, "connection refused", err.Error())
}

func TestSubmitInsertFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	store.insertErr = errors.New("insert failed")
	svc := newTestService(store)

	_, err := svc.Submit(models.SubmitOrderInput{
		MemberID: 1,
		Items:    []models.OrderItemInput{{ItemName: "Kaos", Qty: 1, Harga: 5}},
	})

	assert.EqualError(t, err, "insert failed")
	assert.Empty(t, store.inserted)
}

func TestInsertRawBypassesValidation(t *testing.T) {
	// Jalur legacy: tidak ada member, tidak ada window, row aneh pun masuk
	store := newFakeStore()
	svc := newTestService(store)

	raw := []models.Order{
		{OrderID: "legacy-1", MemberID: 999, Nama: "Siapa Saja", Item: "VEST", Qty: 50, Orderanke: 1},
	}

	rows, err := svc.InsertRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, rows)
	assert.Equal(t, raw, store.inserted)
}

func TestVestCapSimulation(t *testing.T) {
	// Simulasi beberapa submission berurutan: total vest per (member, periode)
	// tidak pernah lewat 5 selama submission-nya sequential.
	store := newFakeStore()
	store.members[1] = &models.Member{ID: 1, Nama: "Rex"}
	store.window = activeWindow(101)
	svc := newTestService(store)

	persisted := 0
	for i := 0; i < 10; i++ {
		store.vestQty["Rex|101"] = persisted
		rows, err := svc.Submit(models.SubmitOrderInput{
			MemberID: 1,
			Items:    []models.OrderItemInput{{ItemName: "Vest Medium", Qty: 2, Harga: 10}},
		})
		if err != nil {
			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			continue
		}
		for _, r := range rows {
			persisted += r.Qty
		}
	}

	assert.LessOrEqual(t, persisted, MaxVestPerMember)
}
