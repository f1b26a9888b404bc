package services

// OrderankeFromMonthWeek menghitung orderanke dari bulan + minggu.
// Konvensi site: orderanke = bulan*10 + minggu. Dipakai dashboard
// kalau client tidak kirim orderanke langsung.
func OrderankeFromMonthWeek(month, week int) int {
	return month*10 + week
}

// ResolveOrderanke menentukan periode order yang dipakai submission.
// Kalau client kirim orderanke eksplisit, langsung dipercaya tanpa cek
// ke tabel windows. Kalau tidak, cari window yang aktif sekarang;
// window overlap di-tolerir dengan ambil orderanke terbesar (query-nya
// sudah order desc + limit 1). Tidak ada yang aktif -> ErrNoActiveWindow.
func (s *SubmissionService) ResolveOrderanke(explicit int) (int, error) {
	if explicit != 0 {
		return explicit, nil
	}

	win, err := s.store.ActiveWindow(s.now())
	if err != nil {
		return 0, err
	}
	if win == nil {
		return 0, ErrNoActiveWindow
	}
	return win.Orderanke, nil
}
