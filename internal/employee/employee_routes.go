package employee

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
	grp := r.Group("")

	grp.Use(middleware.ExtractClaims())

	read := middleware.RBACAuthorize(rbacService, "employee", "read")
	create := middleware.RBACAuthorize(rbacService, "employee", "create")
	update := middleware.RBACAuthorize(rbacService, "employee", "update")

	{
		grp.GET("/employees", read, h.GetAll)
		grp.POST("/employees", create, h.Hire)
		grp.GET("/employees/:id", read, h.GetById)
		grp.GET("/employees/:id/edit", read, h.GetById)
		grp.PUT("/employees/:id", update, h.Edit)
		grp.POST("/employees/:id/resign", update, h.Resign)

		// Kept off /employees to avoid clashing with the :id param.
		grp.GET("/employee-options", read, h.GetOptions)
	}
}
