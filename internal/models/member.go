package models

// Member merepresentasikan tabel 'members' di database.
// Data member dibuat dari halaman admin, core order cuma baca.
type Member struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Nama         string `gorm:"size:100;not null" json:"nama"`
	IsHangaround bool   `gorm:"default:false" json:"is_hangaround"` // Hangaround cuma boleh VEST MEDIUM
}

// Struct untuk menangkap input tambah member baru
type CreateMemberInput struct {
	Nama string `json:"nama"`
}
