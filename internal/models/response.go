package models

import "time"

type RequestListResponse struct {
	Requests []RepairRequest `json:"requests"`
	// Connected is false when the list comes from the local snapshot because
	// the spreadsheet could not be reached, and absent before the first sync.
	Connected *bool `json:"connected"`
}

type DiagnoseResponse struct {
	Diagnosis *DiagnosisResult `json:"diagnosis"`
}

type SyncStatusResponse struct {
	Connected  *bool      `json:"connected"`
	Configured bool       `json:"configured"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
	LastError  string     `json:"lastError,omitempty"`
	Count      int        `json:"count"`
}

type ServiceListResponse struct {
	Services []ServiceProduct `json:"services"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
