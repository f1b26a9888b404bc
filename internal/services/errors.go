package services

import "fmt"

// Error adalah error bisnis dengan status HTTP yang sudah ditentukan.
// Handler tinggal errors.As lalu kirim status + message apa adanya.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInvalidMemberID = &Error{Status: 400, Message: "memberId invalid"}
	ErrMemberNotFound  = &Error{Status: 404, Message: "member tidak ditemukan"}
	ErrNoActiveWindow  = &Error{Status: 400, Message: "Tidak ada periode order aktif"}
	ErrEmptyItems      = &Error{Status: 400, Message: "items kosong atau tidak valid"}
	ErrHangaroundVest  = &Error{Status: 400, Message: "Hangaround hanya boleh VEST MEDIUM"}
)

// errVestLimit dibuat per kejadian karena bawa sisa jatah vest.
func errVestLimit(sisa int) *Error {
	return &Error{Status: 400, Message: fmt.Sprintf("Maksimal VEST per orang %d. Tersisa %d.", MaxVestPerMember, sisa)}
}

// errItemLimit bawa nama item + sisa jatah untuk item ber-maxQty.
func errItemLimit(item string, max, sisa int) *Error {
	return &Error{Status: 400, Message: fmt.Sprintf("Maks %s %d. Tersisa %d.", item, max, sisa)}
}
