package models

import "time"

// OrderWindow merepresentasikan tabel 'order_windows' di database.
// Satu window = satu periode order (orderanke). Konvensinya orderanke = bulan*10 + minggu.
// Idealnya cuma ada SATU window yang aktif dan in-range pada satu waktu;
// kalau ada yang overlap, resolver ambil orderanke yang paling besar.
type OrderWindow struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Orderanke int       `gorm:"uniqueIndex" json:"orderanke"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`
}
