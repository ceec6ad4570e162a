package product

import "github.com/gin-gonic/gin"

// ProductModule wires the product handler into the router.
type ProductModule struct {
	handler *ProductHandler
}

// NewModule creates a ProductModule. Panics if h is nil.
func NewModule(h *ProductHandler) *ProductModule {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &ProductModule{handler: h}
}

// RegisterRoutes registers product API routes.
func (m *ProductModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/products", m.handler.Create)
	api.GET("/products", m.handler.List)
	api.GET("/products/:sku", m.handler.Get)
	api.PUT("/products/:sku", m.handler.Deactivate)
	api.DELETE("/products/:sku", m.handler.Delete)
}
