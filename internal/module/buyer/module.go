package buyer

import "github.com/gin-gonic/gin"

// BuyerModule wires the buyer handler into the router.
type BuyerModule struct {
	handler *BuyerHandler
}

// NewModule creates a BuyerModule. Panics if h is nil.
func NewModule(h *BuyerHandler) *BuyerModule {
	if h == nil {
		panic("buyer.NewModule: handler must not be nil")
	}
	return &BuyerModule{handler: h}
}

// RegisterRoutes registers buyer API routes.
func (m *BuyerModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/buyer", m.handler.Create)
}
