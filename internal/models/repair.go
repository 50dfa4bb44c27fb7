package models

import "strings"

type RepairStatus string

const (
	StatusPending    RepairStatus = "PENDING"
	StatusInProgress RepairStatus = "IN_PROGRESS"
	StatusCompleted  RepairStatus = "COMPLETED"
	StatusCancelled  RepairStatus = "CANCELLED"
)

var AllStatuses = []RepairStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

func (s RepairStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus accepts any casing and "in progress"/"in-progress" spellings.
func ParseStatus(raw string) (RepairStatus, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	status := RepairStatus(normalized)
	return status, status.Valid()
}

type ServiceType string

const (
	ServiceTypeService ServiceType = "Service"
	ServiceTypeRepair  ServiceType = "Repair"
)

func ParseServiceType(raw string) (ServiceType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "service":
		return ServiceTypeService, true
	case "repair":
		return ServiceTypeRepair, true
	}
	return "", false
}

// RepairRequest is one intake ticket. JSON names match the spreadsheet
// header row so the same struct travels to the sheet and to the console.
type RepairRequest struct {
	ID                string       `json:"id"`
	CustomerName      string       `json:"customerName"`
	PhoneNumber       string       `json:"phoneNumber"`
	CarBrand          string       `json:"carBrand"`
	CarModel          string       `json:"carModel"`
	ServiceType       ServiceType  `json:"serviceType"`
	Description       string       `json:"description"`
	Status            RepairStatus `json:"status"`
	CreatedAt         string       `json:"createdAt"`
	EstimatedCost     *float64     `json:"estimatedCost,omitempty"`
	AIDiagnosis       string       `json:"aiDiagnosis,omitempty"`
	ImageURL          string       `json:"imageUrl,omitempty"`
	SelectedProductID string       `json:"selectedProductId,omitempty"`
}

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// ParseUrgency maps free model output onto the three levels; anything
// unrecognised is treated as Medium.
func ParseUrgency(raw string) Urgency {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return UrgencyLow
	case "high":
		return UrgencyHigh
	default:
		return UrgencyMedium
	}
}

type DiagnosisResult struct {
	PossibleIssue      string  `json:"possibleIssue"`
	EstimatedCostRange string  `json:"estimatedCostRange"`
	Urgency            Urgency `json:"urgency"`
}
