package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yolimar/internal/catalog"
	"yolimar/internal/domain"
	"yolimar/internal/pricing"
	"yolimar/internal/usecase"
	"yolimar/pkg/validation"
)

type CartHandler struct {
	cart     *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
	log      *slog.Logger
}

func NewCartHandler(cart *usecase.CartUsecase, checkout *usecase.CheckoutUsecase, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:     cart,
		checkout: checkout,
		log:      log,
	}
}

type addItemRequest struct {
	ID       int    `json:"id" validate:"min=0"`
	Color    string `json:"color" validate:"required,garment_color"`
	Size     string `json:"size" validate:"required,garment_size"`
	Quantity int    `json:"quantity" validate:"min=0,max=99"`
	IsCustom bool   `json:"isCustom"`
	DesignID int    `json:"designId" validate:"min=0"`
}

type updateQuantityRequest struct {
	ID       int    `json:"id" validate:"required,min=1"`
	Color    string `json:"color" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func (h *CartHandler) cartResponse() cartResponse {
	items := h.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items: items,
		Total: h.cart.Total(),
		Count: h.cart.Count(),
	}
}

// GetCart returns the current cart snapshot
// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	startTime := time.Now()
	resp := h.cartResponse()
	c.Header("X-Execution-Time-MS", fmt.Sprintf("%d", time.Since(startTime).Milliseconds()))
	c.JSON(http.StatusOK, resp)
}

// AddItem validates the selection against the catalog and adds it to the cart
// @Summary Add cart item
// @Description Add a stock or designer garment to the cart. Selection and stock are validated here; the cart itself never rejects.
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}
	if err := validation.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "invalid_selection",
			"message": err.Error(),
		})
		return
	}

	item, err := h.buildItem(req)
	if err != nil {
		status, code := http.StatusUnprocessableEntity, "invalid_selection"
		if errors.Is(err, domain.ErrUnknownProduct) {
			status, code = http.StatusNotFound, "not_found"
		}
		h.log.Warn("add to cart rejected", "error", err, "id", req.ID)
		c.JSON(status, gin.H{
			"error":   code,
			"message": err.Error(),
		})
		return
	}

	h.cart.Add(c.Request.Context(), item)
	c.JSON(http.StatusOK, h.cartResponse())
}

// buildItem resolves the authoritative line from the catalog: the client
// picks a selection, never a price.
func (h *CartHandler) buildItem(req addItemRequest) (domain.CartItem, error) {
	if req.IsCustom {
		design, ok := catalog.DesignByID(req.DesignID)
		if !ok {
			return domain.CartItem{}, fmt.Errorf("%w: design %d", domain.ErrUnknownVariant, req.DesignID)
		}
		id := req.ID
		if id <= 0 {
			// Custom lines have no catalog id; derive one from the clock the
			// way the designer tool does.
			id = int(time.Now().UnixMilli())
		}
		return domain.CartItem{
			ID:         id,
			Name:       catalog.CustomGarment.Name + " - " + design.Name,
			Type:       catalog.CustomGarment.ID,
			Color:      req.Color,
			Size:       req.Size,
			Price:      pricing.BasePrice("", req.Size, true),
			Quantity:   req.Quantity,
			Image:      design.Image,
			IsCustom:   true,
			DesignID:   design.ID,
			DesignName: design.Name,
		}, nil
	}

	product, ok := catalog.ProductByID(req.ID)
	if !ok {
		return domain.CartItem{}, fmt.Errorf("%w: %d", domain.ErrUnknownProduct, req.ID)
	}
	variant, ok := catalog.FindVariant(product, req.Color, req.Size)
	if !ok {
		return domain.CartItem{}, fmt.Errorf("%w: %s/%s", domain.ErrUnknownVariant, req.Color, req.Size)
	}
	if variant.Stock <= 0 {
		return domain.CartItem{}, fmt.Errorf("%w: %s", domain.ErrOutOfStock, variant.SKU)
	}

	return domain.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Type:     product.Type,
		Color:    variant.Color,
		Size:     variant.Size,
		Price:    variant.Price,
		Quantity: req.Quantity,
		Image:    product.Image,
	}, nil
}

// UpdateQuantity sets a line's quantity; zero removes the line
// @Summary Update cart line quantity
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}
	if err := validation.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return
	}

	h.cart.UpdateQuantity(c.Request.Context(), req.ID, req.Color, req.Size, req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse())
}

// RemoveItem drops the line(s) matching id, color and size
// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Param id query int true "Product ID"
// @Param color query string true "Color"
// @Param size query string true "Size"
// @Success 200 {object} cartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || c.Query("color") == "" || c.Query("size") == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "id, color and size are required",
		})
		return
	}

	h.cart.Remove(c.Request.Context(), id, c.Query("color"), c.Query("size"))
	c.JSON(http.StatusOK, h.cartResponse())
}

// ClearCart empties the cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} cartResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear(c.Request.Context())
	c.JSON(http.StatusOK, h.cartResponse())
}

// Checkout snapshots the cart and returns the WhatsApp hand-off link
// @Summary Checkout
// @Tags cart
// @Produce json
// @Success 200 {object} usecase.CheckoutResult
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.checkout.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "empty_cart",
				"message": "cart is empty",
			})
			return
		}
		h.log.Error("checkout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "failed to check out",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HealthCheck endpoint
// @Summary Health check
// @Description Check if service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *CartHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "storefront-api",
	})
}
