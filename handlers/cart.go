package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"bbq-ordering-api/activity"
	"bbq-ordering-api/config"
	"bbq-ordering-api/middleware"
	"bbq-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// getOrCreateCart returns the user's cart, creating it on first use.
func getOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	return &cart, err
}

// loadCart fetches the user's cart with items and products preloaded.
func loadCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	cart, err := getOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}
	err = db.Preload("Items.Product").First(cart, cart.ID).Error
	return cart, err
}

// ViewCart returns the cart with live totals
func ViewCart(c *gin.Context) {
	cart, err := loadCart(config.DB, middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":        cart,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	})
}

// AddToCart puts one unit of a product in the cart, incrementing the quantity
// when the product is already there
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var product models.Product
	if err := config.DB.Where("is_active = ?", true).First(&product, c.Param("productId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	cart, err := getOrCreateCart(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	var item models.CartItem
	err = config.DB.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity++
		if err := config.DB.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}
		if err := config.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	activity.Record(c, userID, models.ActionAddToCart,
		fmt.Sprintf("Added %s to cart (Qty: %d)", product.Name, item.Quantity))

	c.JSON(http.StatusOK, gin.H{
		"message":  product.Name + " added to cart",
		"item":     item,
		"quantity": item.Quantity,
	})
}

// Quantity is a pointer so an explicit zero passes binding; zero deletes the
// line rather than failing validation.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets a line quantity. A quantity of zero or less removes the
// line instead of storing a non-positive value
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := ownedCartItem(c, userID)
	if !ok {
		return
	}

	if *req.Quantity <= 0 {
		if err := config.DB.Delete(item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
		return
	}

	if err := config.DB.Model(item).Update("quantity", *req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "item": item})
}

// RemoveCartItem hard-deletes a cart line
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	item, ok := ownedCartItem(c, userID)
	if !ok {
		return
	}

	var product models.Product
	config.DB.First(&product, item.ProductID)

	if err := config.DB.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	activity.Record(c, userID, models.ActionRemoveFromCart,
		fmt.Sprintf("Removed %s from cart", product.Name))

	c.JSON(http.StatusOK, gin.H{"message": product.Name + " removed from cart"})
}

// ownedCartItem resolves the :itemId parameter against the caller's cart.
// Cross-owner items come back as not found.
func ownedCartItem(c *gin.Context, userID uint) (*models.CartItem, bool) {
	var item models.CartItem
	err := config.DB.
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", c.Param("itemId"), userID).
		First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return nil, false
	}
	return &item, true
}

type CheckoutRequest struct {
	PaymentMethod     models.PaymentMethod `json:"payment_method" binding:"required"`
	DeliveryAddress   string               `json:"delivery_address" binding:"required"`
	DeliveryDistrict  string               `json:"delivery_district" binding:"required"`
	DeliveryLatitude  *float64             `json:"delivery_latitude"`
	DeliveryLongitude *float64             `json:"delivery_longitude"`
	OrderNotes        string               `json:"order_notes"`
}

// Checkout converts the cart into an order. The order, its item snapshots,
// the initial pending payment and the cart drain commit as one transaction;
// an empty cart is a no-op.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	cart, err := loadCart(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Your cart is empty"})
		return
	}

	notes := req.OrderNotes
	if notes == "" {
		notes = fmt.Sprintf("Order created from cart with %d items", cart.TotalItems())
	}

	var order models.Order
	var payment models.Payment
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			CustomerID:        userID,
			TotalAmount:       cart.TotalPrice(),
			Status:            models.OrderPending,
			Notes:             notes,
			DeliveryAddress:   req.DeliveryAddress,
			DeliveryDistrict:  req.DeliveryDistrict,
			DeliveryLatitude:  req.DeliveryLatitude,
			DeliveryLongitude: req.DeliveryLongitude,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, cartItem := range cart.Items {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
				Price:     cartItem.Product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		payment = models.Payment{
			OrderID:         order.ID,
			CustomerID:      userID,
			Amount:          order.TotalAmount,
			PaymentMethod:   req.PaymentMethod,
			Status:          models.PaymentPending,
			ReferenceNumber: "PAY-" + uuid.NewString(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	activity.Record(c, userID, models.ActionCreateOrder,
		fmt.Sprintf("Created Order #%d with %d items - Total: %s", order.ID, cart.TotalItems(), order.TotalAmount))
	activity.Record(c, userID, models.ActionPaymentInitiated,
		fmt.Sprintf("Payment #%d initiated for Order #%d - %s via %s", payment.ID, order.ID, payment.Amount, payment.PaymentMethod))

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Order #%d placed successfully", order.ID),
		"order":   order,
		"payment": payment,
	})
}
