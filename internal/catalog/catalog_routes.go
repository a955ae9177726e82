package catalog

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
	cat := r.Group("/catalog")

	cat.Use(middleware.ExtractClaims())

	read := middleware.RBACAuthorize(rbacService, "catalog", "read")
	create := middleware.RBACAuthorize(rbacService, "catalog", "create")
	del := middleware.RBACAuthorize(rbacService, "catalog", "delete")

	{
		cat.GET("/qualifications", read, h.GetQualifications)
		cat.POST("/qualifications", create, h.CreateQualification)
		cat.DELETE("/qualifications/:id", del, h.DeleteQualification)

		cat.GET("/skills", read, h.GetSkills)
		cat.POST("/skills", create, h.CreateSkill)
		cat.DELETE("/skills/:id", del, h.DeleteSkill)

		cat.GET("/assets", read, h.GetAssets)
		cat.POST("/assets", create, h.CreateAsset)
		cat.DELETE("/assets/:id", del, h.DeleteAsset)
	}
}
