package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/samtimberlan/wishop/internal/domain"
	"github.com/samtimberlan/wishop/internal/pkg"
)

// ProductHandler handles REST API requests for the product resource.
type ProductHandler struct {
	svc domain.ProductService
}

// NewProductHandler creates a ProductHandler with the given service.
func NewProductHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	_, err := h.svc.AddProduct(c.Request.Context(), req.SKU, req.Title, req.Description)
	if err != nil {
		pkg.Write(c, pkg.FromError(err))
		return
	}

	pkg.Write(c, pkg.SuccessStatus(nil, "Product added successfully", http.StatusCreated))
}

// Get handles GET /api/products/:sku.
func (h *ProductHandler) Get(c *gin.Context) {
	sku := c.Param("sku")
	onlyActive := parseOnlyActive(c)

	product, err := h.svc.GetProduct(c.Request.Context(), sku, onlyActive)
	if err != nil {
		pkg.Write(c, pkg.FromError(err))
		return
	}

	pkg.Write(c, pkg.Success(toResponse(product)))
}

// List handles GET /api/products with search and pagination.
func (h *ProductHandler) List(c *gin.Context) {
	term := c.Query("searchTerm")
	onlyActive := parseOnlyActive(c)
	req := pkg.ParsePageRequest(c)

	page, err := h.svc.SearchProducts(c.Request.Context(), term, onlyActive, req)
	if err != nil {
		pkg.Write(c, pkg.FromError(err))
		return
	}

	pkg.Write(c, pkg.SuccessPage(toResponsePage(page), "Successful"))
}

// Deactivate handles PUT /api/products/:sku.
func (h *ProductHandler) Deactivate(c *gin.Context) {
	sku := c.Param("sku")

	if err := h.svc.DeactivateProduct(c.Request.Context(), sku); err != nil {
		pkg.Write(c, pkg.FromError(err))
		return
	}

	pkg.Write(c, pkg.SuccessMessage("Product deactivated successfully"))
}

// Delete handles DELETE /api/products/:sku.
func (h *ProductHandler) Delete(c *gin.Context) {
	sku := c.Param("sku")

	if err := h.svc.DeleteProduct(c.Request.Context(), sku); err != nil {
		pkg.Write(c, pkg.FromError(err))
		return
	}

	pkg.Write(c, pkg.SuccessMessage("Product deleted successfully"))
}

// parseOnlyActive reads the onlyActive query parameter, defaulting to true.
// Unparsable values keep the default.
func parseOnlyActive(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("onlyActive", "true"))
	if err != nil {
		return true
	}
	return v
}
