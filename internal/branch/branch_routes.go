package branch

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

	read := middleware.RBACAuthorize(rbacService, "branch", "read")
	create := middleware.RBACAuthorize(rbacService, "branch", "create")
	update := middleware.RBACAuthorize(rbacService, "branch", "update")
	del := middleware.RBACAuthorize(rbacService, "branch", "delete")

	{
		grp.GET("/zones", read, h.GetZones)
		grp.POST("/zones", create, h.CreateZone)
		grp.PUT("/zones/:id", update, h.UpdateZone)
		grp.DELETE("/zones/:id", del, h.DeleteZone)

		grp.GET("/branches", read, h.GetBranches)
		grp.POST("/branches", create, h.CreateBranch)
		grp.GET("/branches/:id", read, h.GetBranchById)
		grp.PUT("/branches/:id", update, h.UpdateBranch)
		grp.DELETE("/branches/:id", del, h.DeleteBranch)
	}
}
