package models

type CreateRepairRequest struct {
	CustomerName string `json:"customerName" binding:"required" example:"Somchai Jaidee"`
	PhoneNumber  string `json:"phoneNumber" binding:"required" example:"081-234-5678"`
	CarBrand     string `json:"carBrand" binding:"required" example:"Toyota"`
	CarModel     string `json:"carModel,omitempty" example:"Camry 1กข 1234"`
	// ServiceType is "Service" or "Repair"; defaults to "Service".
	ServiceType string `json:"serviceType,omitempty" example:"Repair"`
	Description string `json:"description,omitempty"`
	// ImageURL may be a base64 data URI or a remote URL.
	ImageURL          string `json:"imageUrl,omitempty"`
	SelectedProductID string `json:"selectedProductId,omitempty"`
	// Diagnosis is a result previously returned by POST /diagnose.
	Diagnosis *DiagnosisResult `json:"diagnosis,omitempty"`
	// Diagnose asks the server to run the AI diagnosis when Diagnosis is empty.
	Diagnose bool `json:"diagnose,omitempty"`
}

type DiagnoseRequest struct {
	Description string `json:"description" binding:"required"`
	CarBrand    string `json:"carBrand" binding:"required"`
	ServiceType string `json:"serviceType,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type ReplaceServicesRequest struct {
	Services []ServiceProduct `json:"services" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"IN_PROGRESS"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
