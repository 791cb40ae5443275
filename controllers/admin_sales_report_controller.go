package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// ExportSalesReport streams an xlsx workbook of orders in a date range.
// Defaults to the last 30 days when no range is given.
func ExportSalesReport(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.BadRequest(c, "Invalid from date, expected YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.BadRequest(c, "Invalid to date, expected YYYY-MM-DD", nil)
			return
		}
		to = parsed.Add(24*time.Hour - time.Second)
	}

	var orders []models.Order
	if err := config.DB.
		Preload("Items").
		Preload("User").
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for sales report: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		utils.LogError("Failed to build sales report: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Order ID", "Date", "Customer", "Payment", "Status", "Items", "Subtotal", "Discount", "Total"} {
		header.AddCell().SetString(title)
	}

	var totalRevenue float64
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(order.ID.String())
		row.AddCell().SetString(order.CreatedAt.Format("02/01/2006 15:04"))
		row.AddCell().SetString(order.User.Email)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.Status)

		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.DiscountAmount)
		row.AddCell().SetFloat(order.Total)

		if order.Status != models.OrderStatusCancelled {
			totalRevenue += order.Total
		}
	}

	summary := sheet.AddRow()
	summary.AddCell().SetString("Total revenue (excl. cancelled)")
	for i := 0; i < 7; i++ {
		summary.AddCell()
	}
	summary.AddCell().SetFloat(totalRevenue)

	filename := fmt.Sprintf("sales-%s-%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write sales report: %v", err)
	}
	utils.LogInfo("Sales report exported: %d orders from %s to %s",
		len(orders), from.Format("2006-01-02"), to.Format("2006-01-02"))
}
