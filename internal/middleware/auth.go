package middleware

import (
	"net/http"
	"strings"

	"rage-order-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware jaga endpoint admin (kelola window & member).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. Validasi Token
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Gagal memproses token", nil)
			c.Abort()
			return
		}

		// JWT parse angka sebagai float64 -> convert ke uint64 dulu
		var userID uint64
		if val, ok := claims["user_id"].(float64); ok {
			userID = uint64(val)
		}

		c.Set("userID", userID)

		c.Next()
	}
}
