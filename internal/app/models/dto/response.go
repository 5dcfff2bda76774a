package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps a payload with the standard success flag
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// NewDataResponse wraps data in the standard envelope
func NewDataResponse(data interface{}) *DataResponse {
	return &DataResponse{Success: true, Data: data}
}
