package dto

type Response[T any] struct {
	Data    T    `json:"data"`
	Success bool `json:"success"`
}

type PaginatedResponse[T any] struct {
	Data       []T                `json:"data"`
	Success    bool               `json:"success"`
	Pagination PaginationResponse `json:"pagination"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func OK[T any](data T) Response[T] {
	return Response[T]{Data: data, Success: true}
}
