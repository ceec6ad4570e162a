package app

import "github.com/gin-gonic/gin"

// Module is the contract for a self-registering business module. Each module
// attaches its own routes to the API group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
