package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken membuat JWT string berisi User ID
func GenerateToken(userID uint64) (string, error) {
	// Kunci Rahasia (simpan di .env dengan nama JWT_SECRET)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "rahasia_dapur_rage" // Fallback kalau .env lupa diisi
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken memverifikasi apakah token valid atau tidak
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "rahasia_dapur_rage"
	}

	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		// Validasi algoritma enkripsi (harus HMAC)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
}
