package history

import (
	"github.com/businessanalystdm/projecthrm/internal/middleware"
	"github.com/businessanalystdm/projecthrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	hist := r.Group("/history")

	hist.Use(middleware.ExtractClaims())

	read := middleware.RBACAuthorize(rbacService, "history", "read")
	update := middleware.RBACAuthorize(rbacService, "history", "update")

	{
		hist.POST("/transfers", update, h.TransferBranch)
		hist.POST("/increments", update, h.IncrementSalary)
		hist.POST("/promotions", update, h.Promote)
		hist.GET("/:employee_id", read, h.GetHistory)
	}
}
