package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures the public room catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	rooms := rg.Group("/rooms")
	{
		rooms.GET("", controller.ListRooms)    // GET /api/v1/rooms
		rooms.GET("/:id", controller.GetRoom)  // GET /api/v1/rooms/:id
	}
}
