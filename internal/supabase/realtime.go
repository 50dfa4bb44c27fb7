package supabase

import (
	"fmt"
	"log"

	"autoservice-backend/internal/models"

	"github.com/supabase-community/supabase-go"
)

const RequestsChannel = "repair_requests"

// RealtimeClient publishes console events by inserting rows into the events
// table; Supabase Realtime broadcasts table inserts to subscribed consoles.
type RealtimeClient struct {
	client *supabase.Client
	table  string
}

func NewRealtimeClient(client *supabase.Client, table string) *RealtimeClient {
	if table == "" {
		table = "repair_events"
	}
	return &RealtimeClient{
		client: client,
		table:  table,
	}
}

type eventRow struct {
	Channel string                 `json:"channel"`
	Event   string                 `json:"event"`
	Payload map[string]interface{} `json:"payload"`
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	if r == nil || r.client == nil {
		return nil
	}

	_, _, err := r.client.From(r.table).Insert(eventRow{
		Channel: channel,
		Event:   event,
		Payload: payload,
	}, false, "", "minimal", "").Execute()
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event, err)
	}
	return nil
}

// PublishRequestEvent publishes on the shared requests channel. Failures are
// logged; events are advisory.
func (r *RealtimeClient) PublishRequestEvent(event string, payload map[string]interface{}) {
	if err := r.PublishEvent(RequestsChannel, event, payload); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// Event payloads
func RequestCreatedPayload(request models.RepairRequest) map[string]interface{} {
	return map[string]interface{}{
		"id":           request.ID,
		"status":       string(request.Status),
		"service_type": string(request.ServiceType),
		"car_brand":    request.CarBrand,
		"created_at":   request.CreatedAt,
	}
}

func StatusUpdatedPayload(id string, from, to models.RepairStatus) map[string]interface{} {
	return map[string]interface{}{
		"id":     id,
		"from":   string(from),
		"status": string(to),
	}
}

func RequestsSyncedPayload(count int) map[string]interface{} {
	return map[string]interface{}{
		"count": count,
	}
}
