package buyer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samtimberlan/wishop/internal/domain"
	"github.com/samtimberlan/wishop/internal/pkg"
)

// BuyerHandler handles REST API requests for the buyer resource.
type BuyerHandler struct {
	svc domain.BuyerService
}

// NewBuyerHandler creates a BuyerHandler with the given service.
func NewBuyerHandler(svc domain.BuyerService) *BuyerHandler {
	return &BuyerHandler{svc: svc}
}

// Create handles POST /api/buyer.
func (h *BuyerHandler) Create(c *gin.Context) {
	var req CreateBuyerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	_, err := h.svc.CreateBuyer(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		pkg.Write(c, pkg.FromError(err))
		return
	}

	pkg.Write(c, pkg.SuccessStatus(nil, "Buyer created successfully", http.StatusCreated))
}
