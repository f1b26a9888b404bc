package handlers

import (
	"net/http"
	"strings"

	"rage-order-backend/internal/config"
	"rage-order-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetMembers daftar member, opsional search nama
func GetMembers(c *gin.Context) {
	search := c.Query("search")

	query := config.DB.Order("nama asc")
	if search != "" {
		query = query.Where("nama ILIKE ?", "%"+search+"%")
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember tambah member baru (dari halaman admin)
func AddMember(c *gin.Context) {
	var input models.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama required"})
		return
	}

	nama := strings.TrimSpace(input.Nama)
	if nama == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nama required"})
		return
	}

	member := models.Member{Nama: nama}
	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": []models.Member{member}})
}
