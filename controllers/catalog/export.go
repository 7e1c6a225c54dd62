package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/a12frin-shagufta/vanshika-pearl/catalog"
)

// ExportProductsToExcel streams the annotated catalog as an .xlsx download.
func ExportProductsToExcel(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.Products()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Category", "Subcategory", "Difficulty",
			"Price", "FinalPrice", "DiscountPercent", "AppliedOffer",
			"Stock", "Variants",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			name := p.Category.Name
			if name == "" {
				name = p.CategoryName
			}
			row.AddCell().SetValue(name)
			row.AddCell().SetValue(p.Subcategory)
			row.AddCell().SetValue(p.Difficulty)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.FinalPrice)
			row.AddCell().SetValue(p.AppliedDiscountPercent)
			row.AddCell().SetValue(p.AppliedOfferID)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(strconv.Itoa(len(p.Variants)))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
