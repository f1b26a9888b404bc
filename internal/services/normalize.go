package services

import "strings"

// Normalize menyamakan nama item biar bisa dibandingkan:
// uppercase, spasi beruntun jadi satu, lalu trim.
// Input kosong aman, hasilnya string kosong.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}

// IsVestItem true kalau nama item (setelah dinormalisasi) mengandung "VEST".
// Dipakai untuk aturan maksimal 5 vest per member per periode.
func IsVestItem(name string) bool {
	return strings.Contains(Normalize(name), "VEST")
}
