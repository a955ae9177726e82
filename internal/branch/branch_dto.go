package branch

type CreateZoneRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateZoneRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type CreateBranchRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Code   string `json:"code" binding:"required,max=5"`
	ZoneID string `json:"zone_id" binding:"required,uuid"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateBranchRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Code   string `json:"code" binding:"required,max=5"`
	ZoneID string `json:"zone_id" binding:"required,uuid"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type ZoneResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type BranchResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	ZoneID string `json:"zone_id"`
	Status string `json:"status"`
}
