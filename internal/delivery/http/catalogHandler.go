package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yolimar/internal/catalog"
	"yolimar/internal/domain"
	"yolimar/internal/pricing"
)

type CatalogHandler struct {
	log *slog.Logger
}

func NewCatalogHandler(log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{log: log}
}

// productView is a product plus the derived fields the storefront grid shows.
type productView struct {
	domain.Product
	Colors     []string `json:"colors"`
	ColorNames []string `json:"colorNames"`
	ColorHex   []string `json:"colorHex"`
	Sizes      []string `json:"sizes"`
	MinPrice   float64  `json:"minPrice"`
	MaxPrice   float64  `json:"maxPrice"`
	TotalStock int      `json:"totalStock"`
}

func newProductView(p domain.Product) productView {
	colors := catalog.Colors(p)
	names := make([]string, 0, len(colors))
	hexes := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, catalog.ColorName(c))
		hexes = append(hexes, catalog.ColorHex[c])
	}
	return productView{
		Product:    p,
		Colors:     colors,
		ColorNames: names,
		ColorHex:   hexes,
		Sizes:      catalog.Sizes(p),
		MinPrice:   catalog.MinPrice(p),
		MaxPrice:   catalog.MaxPrice(p),
		TotalStock: catalog.TotalStock(p),
	}
}

// ListProducts returns the catalog, optionally filtered by garment type
// @Summary List catalog products
// @Description List products, optionally filtered by garment type
// @Tags catalog
// @Produce json
// @Param type query string false "Garment type"
// @Success 200 {array} productView
// @Router /catalog [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := catalog.ByType(c.Query("type"))
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	c.JSON(http.StatusOK, views)
}

// GetProduct returns one product by id
// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} productView
// @Failure 404 {object} map[string]string
// @Router /catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "product id must be numeric",
		})
		return
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "product not found",
		})
		return
	}
	c.JSON(http.StatusOK, newProductView(product))
}

// ListDesigns returns the designer motifs
// @Summary List designs
// @Tags designs
// @Produce json
// @Success 200 {array} domain.Design
// @Router /designs [get]
func (h *CatalogHandler) ListDesigns(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Designs)
}

// GetPrice quotes a unit price at a quantity
// @Summary Quote a price
// @Description Resolve the unit price for a garment type, size and quantity, applying the bulk discount when it qualifies
// @Tags pricing
// @Produce json
// @Param type query string false "Garment type"
// @Param size query string true "Size label"
// @Param quantity query int false "Quantity"
// @Param custom query bool false "Designer garment"
// @Success 200 {object} pricing.Quote
// @Router /price [get]
func (h *CatalogHandler) GetPrice(c *gin.Context) {
	quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
	if err != nil || quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "quantity must be a positive integer",
		})
		return
	}
	isCustom := c.Query("custom") == "true"

	quote := pricing.PriceWithDiscount(c.Query("type"), c.Query("size"), quantity, isCustom)
	c.JSON(http.StatusOK, quote)
}
