package config

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rage-order-backend/internal/models"
)

// DB koneksi global, diisi sekali oleh ConnectDB saat boot.
var DB *gorm.DB

// ConnectDB buka koneksi Postgres (Supabase) lalu auto-migrate semua tabel.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL belum di-set!")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Gagal konek database: ", err)
	}

	// Sinkronkan skema. Aman dijalankan berulang.
	err = db.AutoMigrate(
		&models.Member{},
		&models.OrderWindow{},
		&models.Order{},
		&models.User{},
	)
	if err != nil {
		log.Fatal("Gagal migrate database: ", err)
	}

	DB = db
	log.Println("Database terkoneksi!")
}
