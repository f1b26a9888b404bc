package models

import "time"

// Order merepresentasikan tabel 'orders' di database.
// Satu submission bisa jadi banyak row, semuanya share OrderID yang sama.
// Row yang sudah masuk tidak pernah di-update lagi oleh core ini.
type Order struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	OrderID   string    `gorm:"size:50;index" json:"order_id"` // Shared per submission, format: unixmilli-suffix
	MemberID  int64     `json:"member_id"`
	Nama      string    `gorm:"size:100" json:"nama"`
	Item      string    `gorm:"size:200" json:"item"`
	Qty       int       `json:"qty"`
	Orderanke int       `gorm:"index" json:"orderanke"`
	Delivered bool      `gorm:"default:false" json:"delivered"`
	Waktu     time.Time `json:"waktu"`
	Harga     float64   `json:"harga"`
	Subtotal  float64   `json:"subtotal"` // Selalu harga*qty saat row dibangun
	Kategori  string    `gorm:"size:100" json:"kategori"`
}

// OrderItemInput satu baris keranjang dari frontend.
// itemName atau itemId boleh salah satu; maxQty opsional (dikirim client
// kalau item tersebut punya batas total per periode).
type OrderItemInput struct {
	ItemName string  `json:"itemName"`
	ItemID   string  `json:"itemId"`
	Qty      int     `json:"qty"`
	Harga    float64 `json:"harga"`
	Kategori string  `json:"kategori"`
	MaxQty   *int    `json:"maxQty"`
}

// SubmitOrderInput format terstruktur POST /api/orders.
// Orderanke opsional: kalau kosong, dicari dari order window yang aktif.
type SubmitOrderInput struct {
	MemberID  int64            `json:"memberId"`
	Items     []OrderItemInput `json:"items"`
	Orderanke int              `json:"orderanke"`
	Delivered bool             `json:"delivered"`
}
