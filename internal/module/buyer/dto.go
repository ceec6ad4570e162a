package buyer

// CreateBuyerRequest represents the input for registering a new buyer.
type CreateBuyerRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
	Name  string `json:"name" form:"name" binding:"required,max=100"`
}
