package organization_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/businessanalystdm/projecthrm/internal/organization"
	organizationerrors "github.com/businessanalystdm/projecthrm/internal/organization/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeOrganizationService embeds the interface so each test only wires the
// methods it exercises.
type fakeOrganizationService struct {
	organization.Service

	createCompanyFn     func(ctx context.Context, req organization.CreateCompanyRequest) (organization.NodeResponse, error)
	getCompaniesFn      func(ctx context.Context) ([]organization.NodeResponse, error)
	createDepartmentFn  func(ctx context.Context, req organization.CreateNodeRequest) (organization.NodeResponse, error)
	getDepartmentsFn    func(ctx context.Context, companyID string) ([]organization.NodeResponse, error)
	deleteDesignationFn func(ctx context.Context, id string) error
}

func (f *fakeOrganizationService) CreateCompany(ctx context.Context, req organization.CreateCompanyRequest) (organization.NodeResponse, error) {
	return f.createCompanyFn(ctx, req)
}

func (f *fakeOrganizationService) GetCompanies(ctx context.Context) ([]organization.NodeResponse, error) {
	return f.getCompaniesFn(ctx)
}

func (f *fakeOrganizationService) CreateDepartment(ctx context.Context, req organization.CreateNodeRequest) (organization.NodeResponse, error) {
	return f.createDepartmentFn(ctx, req)
}

func (f *fakeOrganizationService) GetDepartmentsByCompany(ctx context.Context, companyID string) ([]organization.NodeResponse, error) {
	return f.getDepartmentsFn(ctx, companyID)
}

func (f *fakeOrganizationService) DeleteDesignation(ctx context.Context, id string) error {
	return f.deleteDesignationFn(ctx, id)
}

func TestOrganizationHandler_CreateCompany(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeOrganizationService{
			createCompanyFn: func(ctx context.Context, req organization.CreateCompanyRequest) (organization.NodeResponse, error) {
				assert.Equal(t, "Acme Holdings", req.Name)
				return organization.NodeResponse{
					ID:     uuid.New().String(),
					Name:   req.Name,
					Status: organization.StatusActive,
				}, nil
			},
		}

		h := organization.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Acme Holdings"}`
		req := httptest.NewRequest(http.MethodPost, "/organization/companies", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateCompany(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Acme Holdings")
	})

	t.Run("validation error", func(t *testing.T) {
		h := organization.NewHandler(&fakeOrganizationService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/organization/companies", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateCompany(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeOrganizationService{
			createCompanyFn: func(ctx context.Context, req organization.CreateCompanyRequest) (organization.NodeResponse, error) {
				return organization.NodeResponse{}, errors.New("create failed")
			},
		}

		h := organization.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/organization/companies", strings.NewReader(`{"name":"Acme Holdings"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateCompany(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestOrganizationHandler_GetDepartments(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakeOrganizationService{
			getDepartmentsFn: func(ctx context.Context, cid string) ([]organization.NodeResponse, error) {
				assert.Equal(t, companyID, cid)
				return []organization.NodeResponse{
					{ID: uuid.New().String(), Name: "Engineering", ParentID: cid, Status: organization.StatusActive},
				}, nil
			},
		}

		h := organization.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/organization/departments?company_id="+companyID, nil)

		h.GetDepartments(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Engineering")
	})

	t.Run("missing company_id", func(t *testing.T) {
		h := organization.NewHandler(&fakeOrganizationService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/organization/departments", nil)

		h.GetDepartments(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrganizationHandler_CreateDepartment(t *testing.T) {
	t.Run("unknown parent maps to 404", func(t *testing.T) {
		svc := &fakeOrganizationService{
			createDepartmentFn: func(ctx context.Context, req organization.CreateNodeRequest) (organization.NodeResponse, error) {
				return organization.NodeResponse{}, organizationerrors.ErrNodeNotFound
			},
		}

		h := organization.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Engineering","parent_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/organization/departments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.CreateDepartment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrganizationHandler_DeleteDesignation(t *testing.T) {
	t.Run("conflict when referenced", func(t *testing.T) {
		svc := &fakeOrganizationService{
			deleteDesignationFn: func(ctx context.Context, id string) error {
				return organizationerrors.ErrNodeHasDependents
			},
		}

		h := organization.NewHandler(svc)
		r := gin.New()
		r.DELETE("/organization/designations/:id", h.DeleteDesignation)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/organization/designations/"+uuid.New().String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeOrganizationService{
			deleteDesignationFn: func(ctx context.Context, id string) error {
				return nil
			},
		}

		h := organization.NewHandler(svc)
		r := gin.New()
		r.DELETE("/organization/designations/:id", h.DeleteDesignation)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/organization/designations/"+uuid.New().String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
