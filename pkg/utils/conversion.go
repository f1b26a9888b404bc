package utils

import "strconv"

// StringToInt64 mengubah string angka menjadi int64
// Berguna untuk parsing ID member dari URL parameter
func StringToInt64(str string) int64 {
	val, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0 // Return 0 jika gagal parsing
	}
	return val
}

// StringToInt versi int biasa, dengan nilai default kalau kosong/invalid
func StringToInt(str string, def int) int {
	if str == "" {
		return def
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return def
	}
	return val
}
