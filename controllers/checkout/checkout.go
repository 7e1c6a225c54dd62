package checkoutControllers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/a12frin-shagufta/vanshika-pearl/cart"
	"github.com/a12frin-shagufta/vanshika-pearl/catalog"
	"github.com/a12frin-shagufta/vanshika-pearl/checkout"
	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

type PlaceOrderInput struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Note       string `json:"note"`
}

var (
	usZipPattern     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	caPostalPattern  = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`)
	allowedCountries = map[string]bool{"US": true, "CA": true}
)

func validPostalCode(country, code string) bool {
	switch country {
	case "US":
		return usZipPattern.MatchString(code)
	case "CA":
		return caPostalPattern.MatchString(code)
	default:
		return false
	}
}

// PlaceOrder builds the order payload from the cart and the annotated
// catalog, creates the order on the backend and returns the hosted checkout
// URL. The cart is left intact; the client clears it after the payment
// redirect lands on the thank-you page.
// POST /checkout
func PlaceOrder(cartStore *cart.Store, catalogStore *catalog.Store, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !allowedCountries[input.Country] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "We currently only deliver within the United States and Canada"})
			return
		}
		if !validPostalCode(input.Country, input.PostalCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postal code for " + input.Country})
			return
		}

		lines := cartStore.Items()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		order := checkout.BuildOrderPayload(lines, catalogStore, models.ShippingDetails{
			Name:       input.Name,
			Phone:      input.Phone,
			Email:      input.Email,
			Address:    input.Address,
			City:       input.City,
			State:      input.State,
			Country:    input.Country,
			PostalCode: input.PostalCode,
			Note:       input.Note,
		})
		// Lines whose product vanished from the catalog are skipped; a cart
		// made up entirely of orphans has nothing to charge for.
		if len(order.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No purchasable items in cart"})
			return
		}

		orderID, err := svc.PlaceOrder(c.Request.Context(), order)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		checkoutURL, err := svc.CreatePaymentSession(c.Request.Context(), orderID, "thank-you")
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id":     orderID,
			"order_ref":    order.OrderRef,
			"checkout_url": checkoutURL,
		})
	}
}

// Preview returns the resolved order summary (items, subtotal, shipping,
// total) without creating anything, for the checkout page to render.
// GET /checkout/preview
func Preview(cartStore *cart.Store, catalogStore *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := checkout.BuildOrderPayload(cartStore.Items(), catalogStore, models.ShippingDetails{})
		c.JSON(http.StatusOK, gin.H{
			"items":    order.Items,
			"subtotal": order.Subtotal,
			"shipping": order.Shipping,
			"total":    order.Total,
		})
	}
}
