package organization

type CreateCompanyRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

type UpdateCompanyRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Status string `json:"status" binding:"required,oneof=active inactive pending"`
}

type CreateNodeRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	ParentID string `json:"parent_id" binding:"required,uuid"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateNodeRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	ParentID string `json:"parent_id" binding:"required,uuid"`
	Status   string `json:"status" binding:"required,oneof=active inactive"`
}

type CreateDesignationRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Rank     int    `json:"rank" binding:"omitempty,min=1"`
	ParentID string `json:"parent_id" binding:"required,uuid"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateDesignationRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Rank     int    `json:"rank" binding:"required,min=1"`
	ParentID string `json:"parent_id" binding:"required,uuid"`
	Status   string `json:"status" binding:"required,oneof=active inactive"`
}

type NodeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Rank     int    `json:"rank,omitempty"`
	Status   string `json:"status"`
}
