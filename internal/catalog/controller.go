package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListRooms handles GET /api/v1/rooms
func (c *Controller) ListRooms(ctx *gin.Context) {
	rooms := c.service.All()

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Rooms retrieved successfully",
		"data": gin.H{
			"rooms": rooms,
			"count": len(rooms),
		},
	})
}

// GetRoom handles GET /api/v1/rooms/:id
func (c *Controller) GetRoom(ctx *gin.Context) {
	roomID := ctx.Param("id")

	room, ok := c.service.Lookup(roomID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Room retrieved successfully",
		"data":    room,
	})
}
