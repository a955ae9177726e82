package catalog

import (
	"net/http"

	"github.com/businessanalystdm/projecthrm/internal/shared/apperror"
	"github.com/businessanalystdm/projecthrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) create(c *gin.Context, create func(ctx *gin.Context, req CreateItemRequest) (ItemResponse, error)) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := create(c, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateQualification(c *gin.Context) {
	h.create(c, func(c *gin.Context, req CreateItemRequest) (ItemResponse, error) {
		return h.service.CreateQualification(c.Request.Context(), req)
	})
}

func (h *Handler) GetQualifications(c *gin.Context) {
	resp, err := h.service.GetQualifications(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteQualification(c *gin.Context) {
	if err := h.service.DeleteQualification(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreateSkill(c *gin.Context) {
	h.create(c, func(c *gin.Context, req CreateItemRequest) (ItemResponse, error) {
		return h.service.CreateSkill(c.Request.Context(), req)
	})
}

func (h *Handler) GetSkills(c *gin.Context) {
	resp, err := h.service.GetSkills(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	if err := h.service.DeleteSkill(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreateAsset(c *gin.Context) {
	h.create(c, func(c *gin.Context, req CreateItemRequest) (ItemResponse, error) {
		return h.service.CreateAsset(c.Request.Context(), req)
	})
}

func (h *Handler) GetAssets(c *gin.Context) {
	resp, err := h.service.GetAssets(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteAsset(c *gin.Context) {
	if err := h.service.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
