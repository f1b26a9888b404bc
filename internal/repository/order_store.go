package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"rage-order-backend/internal/models"
)

// GormOrderStore implementasi services.OrderStore di atas Postgres.
// Match item case-insensitive pakai ILIKE, sama seperti query site lama.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (r *GormOrderStore) MemberByID(id int64) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *GormOrderStore) ActiveWindow(now time.Time) (*models.OrderWindow, error) {
	var win models.OrderWindow
	err := r.db.
		Where("is_active = ? AND start_time <= ? AND end_time >= ?", true, now, now).
		Order("orderanke desc").
		First(&win).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &win, nil
}

func (r *GormOrderStore) VestQty(nama string, orderanke int) (int, error) {
	return r.sumQty(r.db.
		Where("nama = ? AND orderanke = ?", nama, orderanke).
		Where("item ILIKE ?", "%VEST%"))
}

func (r *GormOrderStore) ItemQty(orderanke int, normName string) (int, error) {
	// Tanpa wildcard: ILIKE di sini cuma buat samain huruf besar/kecil.
	return r.sumQty(r.db.
		Where("orderanke = ?", orderanke).
		Where("item ILIKE ?", normName))
}

func (r *GormOrderStore) InsertOrders(rows []models.Order) ([]models.Order, error) {
	if err := r.db.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormOrderStore) sumQty(q *gorm.DB) (int, error) {
	var total int64
	err := q.Model(&models.Order{}).Select("COALESCE(SUM(qty), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
