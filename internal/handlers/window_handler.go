package handlers

import (
	"net/http"
	"time"

	"rage-order-backend/internal/config"
	"rage-order-backend/internal/models"
	"rage-order-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetWindows semua order window, terbaru duluan
func GetWindows(c *gin.Context) {
	var windows []models.OrderWindow
	if err := config.DB.Order("start_time desc").Find(&windows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, windows)
}

// GetActiveWindow window yang sedang aktif sekarang, null kalau tidak ada.
// Query-nya sama persis dengan yang dipakai resolver di jalur submit.
func GetActiveWindow(c *gin.Context) {
	store := repository.NewGormOrderStore(config.DB)

	win, err := store.ActiveWindow(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, win) // win nil -> body "null", frontend sudah handle
}

// CreateWindow buka periode order baru
func CreateWindow(c *gin.Context) {
	var window models.OrderWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&window).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": []models.OrderWindow{window}})
}

// UpdateWindow edit window (toggle aktif, geser jadwal, dll)
func UpdateWindow(c *gin.Context) {
	id := c.Param("id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&models.OrderWindow{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var window models.OrderWindow
	if err := config.DB.First(&window, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": []models.OrderWindow{window}})
}

// DeleteWindow hapus window
func DeleteWindow(c *gin.Context) {
	id := c.Param("id")

	if err := config.DB.Delete(&models.OrderWindow{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
