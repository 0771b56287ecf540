package ordercontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lumina-co/jewelry-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel downloads the full order book as a spreadsheet.
// GET /api/orders/export-excel (admin)
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Customer", "Phone", "Email", "Address",
			"Items", "Total", "Status", "Notes", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(o.CustomerAddress)

			var items []string
			for _, item := range o.Items {
				items = append(items, item.Name+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.Notes)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
