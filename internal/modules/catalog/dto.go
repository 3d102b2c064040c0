package catalog

type CreateServiceRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category" binding:"required"`
	SuggestedPrice float64 `json:"suggested_price" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	SuggestedPrice *float64 `json:"suggested_price"`
	IsActive       *bool    `json:"is_active"`
}

type CreateOfferingRequest struct {
	TechnicianID int64   `json:"technician_id" binding:"required"`
	ServiceID    int64   `json:"service_id" binding:"required"`
	BaseRate     float64 `json:"base_rate" binding:"gte=0"`
}

type UpdateOfferingRequest struct {
	BaseRate float64 `json:"base_rate" binding:"gte=0"`
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
