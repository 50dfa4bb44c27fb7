package tracking

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"autoservice-backend/internal/models"
)

// Search returns the requests matching query, newest first. An empty query
// matches everything. Names, brands and plates are compared with all
// whitespace removed so "1กข 1234" finds "1กข1234"; phone numbers are compared
// on digits only so "081-234" finds "0812345678".
func Search(requests []models.RepairRequest, query string) []models.RepairRequest {
	sorted := SortNewestFirst(requests)

	needle := normalize(query)
	if needle == "" {
		return sorted
	}
	digits := digitsOnly(needle)

	matches := make([]models.RepairRequest, 0, len(sorted))
	for _, request := range sorted {
		if matchesRequest(request, needle, digits) {
			matches = append(matches, request)
		}
	}
	return matches
}

// FilterByStatus keeps requests in any of statuses. No statuses keeps all.
func FilterByStatus(requests []models.RepairRequest, statuses ...models.RepairStatus) []models.RepairRequest {
	if len(statuses) == 0 {
		return append([]models.RepairRequest(nil), requests...)
	}

	filtered := make([]models.RepairRequest, 0, len(requests))
	for _, request := range requests {
		for _, status := range statuses {
			if request.Status == status {
				filtered = append(filtered, request)
				break
			}
		}
	}
	return filtered
}

// SortNewestFirst returns a copy ordered by createdAt descending. Requests
// whose timestamp does not parse sort after every dated one.
func SortNewestFirst(requests []models.RepairRequest) []models.RepairRequest {
	sorted := append([]models.RepairRequest(nil), requests...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, okI := parseTime(sorted[i].CreatedAt)
		tj, okJ := parseTime(sorted[j].CreatedAt)
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
	return sorted
}

func matchesRequest(request models.RepairRequest, needle, digits string) bool {
	for _, haystack := range []string{request.CustomerName, request.CarBrand, request.CarModel} {
		if strings.Contains(normalize(haystack), needle) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(request.ID), needle) {
		return true
	}
	return digits != "" && strings.Contains(digitsOnly(request.PhoneNumber), digits)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func normalize(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, value)
}

func digitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}
