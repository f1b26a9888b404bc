package handlers

import (
	"net/http"

	"rage-order-backend/internal/config"
	"rage-order-backend/internal/models"
	"rage-order-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// REGISTER akun admin baru
func Register(c *gin.Context) {
	var input models.RegisterInput

	// 1. Validasi Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	// 2. Hash Password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	// 3. Simpan ke Database
	user := models.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email sudah terdaftar!", nil)
		return
	}

	// 4. Sukses
	utils.APIResponse(c, http.StatusCreated, true, "Registrasi Berhasil! Silakan Login.", user)
}

// LOGIN
func Login(c *gin.Context) {
	var input models.LoginInput

	// 1. Validasi Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "email and password required", nil)
		return
	}

	// 2. Cari User berdasarkan Email
	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "invalid credentials", nil)
		return
	}

	// 3. Cek Password
	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "invalid credentials", nil)
		return
	}

	// 4. Generate JWT Token
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	// 5. Sukses & Kirim Token
	utils.APIResponse(c, http.StatusOK, true, "Login Berhasil", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}
