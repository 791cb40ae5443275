package controllers

import (
	"bytes"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// DownloadInvoice renders the order as a PDF and streams it to the client
func DownloadInvoice(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order id", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&order).Error; err != nil {
		utils.LogError("Invoice request for unknown order %s by user ID: %d", id, user.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	pdf, err := renderInvoicePDF(&order, &user)
	if err != nil {
		utils.LogError("Failed to render invoice for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.ID)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "application/pdf", pdf)
}

func renderInvoicePDF(order *models.Order, user *models.User) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "VaporHouse")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Pedido / Order")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02/01/2006 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s (%s)", user.Username, user.Email))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Delivery: %s, %s - %s, %s",
		order.Street, order.Number, order.Neighborhood, order.City))
	pdf.Ln(6)
	payment := order.PaymentMethod
	if order.PaymentMethod == models.PaymentMethodCash && order.ChangeFor != nil {
		payment = fmt.Sprintf("%s (troco para R$ %.2f)", payment, *order.ChangeFor)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Payment: %s", payment))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		name := item.ProductName
		if item.Flavor != "" {
			name = fmt.Sprintf("%s (%s)", name, item.Flavor)
		}
		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("R$ %.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("R$ %.2f", item.Price*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(145, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("R$ %.2f", order.Subtotal), "", 0, "R", false, 0, "")
	pdf.Ln(-1)
	if order.DiscountAmount > 0 {
		pdf.CellFormat(145, 7, fmt.Sprintf("Discount (%s)", order.DiscountCode), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("-R$ %.2f", order.DiscountAmount), "", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(145, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("R$ %.2f", order.Total), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
