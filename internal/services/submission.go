package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rage-order-backend/internal/models"
)

// MaxVestPerMember batas total vest per member per periode order.
const MaxVestPerMember = 5

// OrderStore adalah kontrak query yang dibutuhkan core submission.
// Implementasi aslinya GORM (internal/repository); test pakai fake.
type OrderStore interface {
	// MemberByID balikin nil (tanpa error) kalau member tidak ada.
	MemberByID(id int64) (*models.Member, error)
	// ActiveWindow balikin window aktif dengan orderanke terbesar yang
	// start_time <= now <= end_time, atau nil kalau tidak ada.
	ActiveWindow(now time.Time) (*models.OrderWindow, error)
	// VestQty total qty item mengandung "VEST" (case-insensitive) milik
	// satu member di satu periode.
	VestQty(nama string, orderanke int) (int, error)
	// ItemQty total qty item yang match nama ternormalisasi
	// (case-insensitive, exact) di satu periode.
	ItemQty(orderanke int, normName string) (int, error)
	// InsertOrders insert batch dan balikin row yang masuk (sudah ber-ID).
	InsertOrders(rows []models.Order) ([]models.Order, error)
}

// SubmissionService menjalankan jalur submit order end-to-end:
// resolve periode -> resolve member -> bangun rows -> cek kuota -> insert.
type SubmissionService struct {
	store OrderStore
	now   func() time.Time // injectable biar test bisa freeze waktu
}

func NewSubmissionService(store OrderStore) *SubmissionService {
	return &SubmissionService{store: store, now: time.Now}
}

// ResolveMember cari member by id. ID harus positif.
func (s *SubmissionService) ResolveMember(memberID int64) (*models.Member, error) {
	if memberID <= 0 {
		return nil, ErrInvalidMemberID
	}

	member, err := s.store.MemberByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// Submit jalur tervalidasi untuk body terstruktur { memberId, items, ... }.
// Gagal di step manapun langsung berhenti, tidak ada row yang keburu masuk.
func (s *SubmissionService) Submit(in models.SubmitOrderInput) ([]models.Order, error) {
	orderanke, err := s.ResolveOrderanke(in.Orderanke)
	if err != nil {
		return nil, err
	}

	member, err := s.ResolveMember(in.MemberID)
	if err != nil {
		return nil, err
	}

	rows := buildRows(member, in, orderanke, s.now())
	if len(rows) == 0 {
		return nil, ErrEmptyItems
	}

	if err := s.validateRules(member, rows, in.Items, orderanke); err != nil {
		return nil, err
	}

	// Cek kuota di atas baca total dari DB, insert-nya nyusul tanpa
	// transaksi. Dua submission barengan untuk member+periode yang sama
	// bisa sama-sama lolos cek sebelum salah satunya masuk; perilaku
	// bawaan sistem lama yang dipertahankan.
	return s.store.InsertOrders(rows)
}

// InsertRaw jalur legacy: body berupa array row langsung di-insert apa
// adanya, TANPA validasi member/window/kuota. Masih dipakai bulk import
// lama; kandidat untuk dihapus kalau flow import sudah pindah.
func (s *SubmissionService) InsertRaw(rows []models.Order) ([]models.Order, error) {
	return s.store.InsertOrders(rows)
}

// buildRows expand keranjang jadi row siap insert. Row tanpa nama item
// atau qty <= 0 dibuang; urutan item dipertahankan.
func buildRows(member *models.Member, in models.SubmitOrderInput, orderanke int, now time.Time) []models.Order {
	orderID := newOrderID(now)

	rows := make([]models.Order, 0, len(in.Items))
	for _, it := range in.Items {
		item := strings.TrimSpace(displayName(it))
		if item == "" || it.Qty <= 0 {
			continue
		}

		rows = append(rows, models.Order{
			OrderID:   orderID,
			MemberID:  member.ID,
			Nama:      member.Nama,
			Item:      item,
			Qty:       it.Qty,
			Orderanke: orderanke,
			Delivered: in.Delivered,
			Waktu:     now,
			Harga:     it.Harga,
			Subtotal:  it.Harga * float64(it.Qty),
			Kategori:  strings.TrimSpace(it.Kategori),
		})
	}
	return rows
}

// validateRules cek kuota secara berurutan, gagal pertama menang.
func (s *SubmissionService) validateRules(member *models.Member, rows []models.Order, items []models.OrderItemInput, orderanke int) error {
	// 1. Hangaround cuma boleh vest ukuran MEDIUM; varian vest lain
	// ("Vest Small", "VEST", dst) ditolak. Satu row saja yang melanggar
	// -> seluruh batch ditolak, bukan di-drop diam-diam.
	if member.IsHangaround {
		for _, r := range rows {
			if IsVestItem(r.Item) && !strings.Contains(strings.ToUpper(r.Item), "MEDIUM") {
				return ErrHangaroundVest
			}
		}
	}

	// 2. Maksimal 5 vest per member di periode yang sama,
	// dihitung gabungan keranjang + yang sudah ada di DB.
	cartVest := 0
	for _, r := range rows {
		if IsVestItem(r.Item) {
			cartVest += r.Qty
		}
	}
	if cartVest > 0 {
		existing, err := s.store.VestQty(member.Nama, orderanke)
		if err != nil {
			return err
		}
		if existing+cartVest > MaxVestPerMember {
			return errVestLimit(max(0, MaxVestPerMember-existing))
		}
	}

	// 3. Batas per item, hanya kalau client kirim maxQty.
	// cartQty dijumlah lintas item sekeranjang yang nama normalnya sama.
	for _, it := range items {
		if it.MaxQty == nil {
			continue
		}
		norm := Normalize(displayName(it))

		cartQty := 0
		for _, x := range items {
			if Normalize(displayName(x)) == norm {
				cartQty += x.Qty
			}
		}

		dbQty, err := s.store.ItemQty(orderanke, norm)
		if err != nil {
			return err
		}
		if dbQty+cartQty > *it.MaxQty {
			return errItemLimit(it.ItemName, *it.MaxQty, max(0, *it.MaxQty-dbQty))
		}
	}

	return nil
}

// displayName ambil itemName, fallback ke itemId.
func displayName(it models.OrderItemInput) string {
	if it.ItemName != "" {
		return it.ItemName
	}
	return it.ItemID
}

// newOrderID id unik per submission: unix millis + suffix acak pendek.
// Cukup anti-tabrakan untuk kebutuhan grouping, bukan untuk keamanan.
func newOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
