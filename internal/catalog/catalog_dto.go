package catalog

type CreateItemRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
