package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"autoservice-backend/internal/models"
)

const UnknownCustomer = "Unknown"

// decodeRows turns the script's GET body into requests. Header cells are
// typed by hand in the sheet, so every field is looked up under both its
// camelCase and PascalCase spelling. A body that is not an array is an
// empty sheet.
func decodeRows(body []byte) ([]models.RepairRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		if !json.Valid(trimmed) {
			return nil, fmt.Errorf("failed to decode rows: response is not JSON: %s", truncate(trimmed, 200))
		}
		return []models.RepairRequest{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var rows []map[string]interface{}
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	requests := make([]models.RepairRequest, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		requests = append(requests, rowToRequest(row))
	}
	return requests, nil
}

func rowToRequest(row map[string]interface{}) models.RepairRequest {
	request := models.RepairRequest{
		ID:                field(row, "id", "ID"),
		CustomerName:      field(row, "customerName", "CustomerName"),
		PhoneNumber:       field(row, "phoneNumber", "PhoneNumber"),
		CarBrand:          field(row, "carBrand", "CarBrand"),
		CarModel:          field(row, "carModel", "CarModel"),
		Description:       field(row, "description", "Description"),
		CreatedAt:         field(row, "createdAt", "CreatedAt"),
		AIDiagnosis:       field(row, "aiDiagnosis", "AiDiagnosis", "AIDiagnosis"),
		ImageURL:          field(row, "imageUrl", "ImageUrl", "ImageURL"),
		SelectedProductID: field(row, "selectedProductId", "SelectedProductId"),
	}

	if request.CustomerName == "" {
		request.CustomerName = UnknownCustomer
	}

	request.ServiceType = models.ServiceTypeService
	if serviceType, ok := models.ParseServiceType(field(row, "serviceType", "ServiceType")); ok {
		request.ServiceType = serviceType
	}

	request.Status = models.StatusPending
	if status, ok := models.ParseStatus(field(row, "status", "Status")); ok {
		request.Status = status
	}

	if request.CreatedAt == "" {
		request.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if raw := field(row, "estimatedCost", "EstimatedCost"); raw != "" {
		cost, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err == nil && cost != 0 {
			request.EstimatedCost = &cost
		}
	}

	return request
}

// field returns the first non-empty value among keys, rendered as text.
func field(row map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value := cellString(row[key]); value != "" {
			return value
		}
	}
	return ""
}

func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case bool:
		if !v {
			return ""
		}
		return "true"
	default:
		return fmt.Sprint(v)
	}
}
