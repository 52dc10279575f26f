package routes

import (
	"locamaq/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers = "/users"
)

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PUT("/:id", userHandler.UpdateDetails)
		users.PATCH("/:id/deactivate", userHandler.Deactivate)
		users.PATCH("/:id/reactivate", userHandler.Reactivate)
		users.DELETE("/:id", userHandler.Delete)
	}
}
