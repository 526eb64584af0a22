package models

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ListResponse wraps unpaginated lists so they share the {"data": [...]} shape.
type ListResponse struct {
	Data any `json:"data"`
}
