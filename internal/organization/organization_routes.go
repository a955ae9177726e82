package organization

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
	org := r.Group("/organization")

	org.Use(middleware.ExtractClaims())

	read := middleware.RBACAuthorize(rbacService, "organization", "read")
	create := middleware.RBACAuthorize(rbacService, "organization", "create")
	update := middleware.RBACAuthorize(rbacService, "organization", "update")
	del := middleware.RBACAuthorize(rbacService, "organization", "delete")

	{
		org.GET("/companies", read, h.GetCompanies)
		org.POST("/companies", create, h.CreateCompany)
		org.PUT("/companies/:id", update, h.UpdateCompany)
		org.DELETE("/companies/:id", del, h.DeleteCompany)

		org.GET("/departments", read, h.GetDepartments)
		org.POST("/departments", create, h.CreateDepartment)
		org.PUT("/departments/:id", update, h.UpdateDepartment)
		org.DELETE("/departments/:id", del, h.DeleteDepartment)

		org.GET("/sub-departments", read, h.GetSubDepartments)
		org.POST("/sub-departments", create, h.CreateSubDepartment)
		org.PUT("/sub-departments/:id", update, h.UpdateSubDepartment)
		org.DELETE("/sub-departments/:id", del, h.DeleteSubDepartment)

		org.GET("/categories", read, h.GetCategories)
		org.POST("/categories", create, h.CreateCategory)
		org.PUT("/categories/:id", update, h.UpdateCategory)
		org.DELETE("/categories/:id", del, h.DeleteCategory)

		org.GET("/designations", read, h.GetDesignations)
		org.POST("/designations", create, h.CreateDesignation)
		org.PUT("/designations/:id", update, h.UpdateDesignation)
		org.DELETE("/designations/:id", del, h.DeleteDesignation)
	}
}
