package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"rage-order-backend/internal/config"
	"rage-order-backend/internal/models"
	"rage-order-backend/internal/repository"
	"rage-order-backend/internal/services"
	"rage-order-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetOrders semua order, terbaru duluan
func GetOrders(c *gin.Context) {
	limit := utils.StringToInt(c.Query("limit"), 500)

	var orders []models.Order
	if err := config.DB.Order("waktu desc").Limit(limit).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// SubmitOrders jalur utama POST /api/orders.
// Body bisa dua format: array row mentah (jalur legacy bulk import,
// masuk tanpa validasi) atau objek { memberId, items, orderanke?, delivered? }
// yang lewat validasi lengkap. Formatnya diputuskan sekali di sini dari
// token JSON pertama, sisanya diurus SubmissionService.
func SubmitOrders(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body tidak terbaca"})
		return
	}

	svc := services.NewSubmissionService(repository.NewGormOrderStore(config.DB))

	var rows []models.Order
	var submitErr error

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// JALUR LEGACY: insert apa adanya
		var raw []models.Order
		if err := json.Unmarshal(body, &raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Body harus berupa array orders atau objek { memberId, items }"})
			return
		}
		rows, submitErr = svc.InsertRaw(raw)
	} else {
		// JALUR TERVALIDASI
		var input models.SubmitOrderInput
		if err := json.Unmarshal(body, &input); err != nil || input.Items == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Body harus berupa array orders atau objek { memberId, items }"})
			return
		}
		rows, submitErr = svc.Submit(input)
	}

	if submitErr != nil {
		var svcErr *services.Error
		if errors.As(submitErr, &svcErr) {
			c.JSON(svcErr.Status, gin.H{"error": svcErr.Message})
			return
		}
		// Error dari store diteruskan apa adanya
		c.JSON(http.StatusInternalServerError, gin.H{"error": submitErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// GetOrdersByMember history order satu member, opsional difilter periode
func GetOrdersByMember(c *gin.Context) {
	memberID := utils.StringToInt64(c.Param("id"))
	orderanke := utils.StringToInt(c.Query("orderanke"), 0)

	query := config.DB.
		Where("member_id = ?", memberID).
		Order("waktu desc")

	if orderanke != 0 {
		query = query.Where("orderanke = ?", orderanke)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetItemTotals rekap total qty per item untuk satu periode (untuk rekap kota)
func GetItemTotals(c *gin.Context) {
	orderanke := c.Query("orderanke")
	if orderanke == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderanke required"})
		return
	}

	var rows []models.Order
	err := config.DB.
		Select("item", "qty").
		Where("orderanke = ?", orderanke).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals := make(map[string]int)
	for _, row := range rows {
		totals[strings.ToUpper(row.Item)] += row.Qty
	}

	c.JSON(http.StatusOK, totals)
}

// NotifyDiscord teruskan pesan ke channel Discord via webhook
func NotifyDiscord(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	if err := utils.SendDiscordMessage(input.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send Discord message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
