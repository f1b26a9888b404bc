package handlers

import (
	"net/http"
	"strings"

	"rage-order-backend/internal/config"
	"rage-order-backend/internal/models"
	"rage-order-backend/internal/services"
	"rage-order-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MemberSummary rekap order satu member dalam satu periode
type MemberSummary struct {
	MemberName string        `json:"member_name"`
	Items      []ItemSummary `json:"items"`
	Total      float64       `json:"total"`
}

type ItemSummary struct {
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	Subtotal float64 `json:"subtotal"`
}

// GetDashboard rekap per member untuk satu periode.
// Periode dari query orderanke, atau dihitung dari month+week.
func GetDashboard(c *gin.Context) {
	orderanke := utils.StringToInt(c.Query("orderanke"), 0)
	if orderanke == 0 {
		month := utils.StringToInt(c.Query("month"), 0)
		week := utils.StringToInt(c.Query("week"), 0)
		if month == 0 || week == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderanke atau (month dan week) diperlukan"})
			return
		}
		orderanke = services.OrderankeFromMonthWeek(month, week)
	}

	nameFilter := strings.ToLower(strings.TrimSpace(c.Query("name")))

	var rows []models.Order
	err := config.DB.
		Select("nama", "item", "qty", "harga", "subtotal", "orderanke").
		Where("orderanke = ?", orderanke).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Group per member, urutan sesuai kemunculan pertama di hasil query
	grouped := make(map[string][]models.Order)
	var memberOrder []string
	for _, row := range rows {
		nama := row.Nama
		if nama == "" {
			nama = "Unknown"
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(nama), nameFilter) {
			continue
		}
		if _, ok := grouped[nama]; !ok {
			memberOrder = append(memberOrder, nama)
		}
		grouped[nama] = append(grouped[nama], row)
	}

	result := make([]MemberSummary, 0, len(memberOrder))
	for _, nama := range memberOrder {
		itemAgg := make(map[string]*ItemSummary)
		var itemOrder []string
		var total float64

		for _, r := range grouped[nama] {
			key := r.Item
			if key == "" {
				key = "Unknown"
			}
			subtotal := r.Subtotal
			if subtotal == 0 {
				subtotal = r.Harga * float64(r.Qty) // Row lama kadang belum punya subtotal
			}

			agg, ok := itemAgg[key]
			if !ok {
				agg = &ItemSummary{Name: key}
				itemAgg[key] = agg
				itemOrder = append(itemOrder, key)
			}
			agg.Qty += r.Qty
			agg.Subtotal += subtotal
			total += subtotal
		}

		items := make([]ItemSummary, 0, len(itemOrder))
		for _, key := range itemOrder {
			items = append(items, *itemAgg[key])
		}

		result = append(result, MemberSummary{
			MemberName: nama,
			Items:      items,
			Total:      total,
		})
	}

	c.JSON(http.StatusOK, result)
}
