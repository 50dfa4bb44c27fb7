package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"autoservice-backend/internal/gemini"
	"autoservice-backend/internal/localstore"
	"autoservice-backend/internal/models"
	"autoservice-backend/internal/sheets"
	"autoservice-backend/internal/supabase"
	"autoservice-backend/internal/tracking"
)

const (
	EventRequestCreated = "request_created"
	EventStatusUpdated  = "status_updated"
	EventRequestsSynced = "requests_synced"

	ticketIDLayout = "02012006-150405"
)

// RemoteStore is the shop spreadsheet.
type RemoteStore interface {
	Configured() bool
	Fetch(ctx context.Context) ([]models.RepairRequest, error)
	Append(ctx context.Context, request models.RepairRequest) error
	UpdateStatus(ctx context.Context, id string, status models.RepairStatus) error
	RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int) error
}

type Diagnoser interface {
	Diagnose(ctx context.Context, input gemini.DiagnosisInput) (*models.DiagnosisResult, error)
}

type PhotoUploader interface {
	UploadPhoto(requestID, dataURI string) (string, string, error)
}

type EventPublisher interface {
	PublishRequestEvent(event string, payload map[string]interface{})
}

type CustomerNotifier interface {
	NotifyStatusChange(ctx context.Context, request models.RepairRequest) error
}

// RequestServiceDeps wires the service. Only Remote and Store are required.
type RequestServiceDeps struct {
	Remote    RemoteStore
	Store     localstore.Store
	Catalog   *CatalogService
	Diagnoser Diagnoser
	Photos    PhotoUploader
	Events    EventPublisher
	Notifier  CustomerNotifier

	WriteRetries int
	WriteTimeout time.Duration
	Location     *time.Location
	Now          func() time.Time
}

// pendingWrite tracks a ticket whose local state has not been confirmed by
// the spreadsheet yet.
type pendingWrite struct {
	inflight int
	failed   bool
}

type SyncState struct {
	// Connected is nil until the first sync attempt.
	Connected  *bool
	Configured bool
	LastSyncAt *time.Time
	LastError  string
	Count      int
}

// RequestService holds the working list of tickets. The in-memory list is
// authoritative for this process; the spreadsheet is written behind it and
// the snapshot store mirrors it.
type RequestService struct {
	deps RequestServiceDeps

	mu          sync.RWMutex
	requests    []models.RepairRequest
	reserved    map[string]bool
	unconfirmed map[string]*pendingWrite
	connected   *bool
	lastSyncAt  *time.Time
	lastError   string

	inflight sync.WaitGroup
}

func NewRequestService(deps RequestServiceDeps) *RequestService {
	if deps.WriteRetries < 1 {
		deps.WriteRetries = 3
	}
	if deps.WriteTimeout <= 0 {
		deps.WriteTimeout = 2 * time.Minute
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &RequestService{
		deps:        deps,
		reserved:    make(map[string]bool),
		unconfirmed: make(map[string]*pendingWrite),
	}
}

// Restore fills the list from the local snapshot without touching the
// spreadsheet.
func (s *RequestService) Restore(ctx context.Context) error {
	var cached []models.RepairRequest
	found, err := s.deps.Store.Load(ctx, localstore.KeyRepairRequests, &cached)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	s.requests = cached
	s.mu.Unlock()
	log.Printf("Restored %d repair requests from snapshot", len(cached))
	return nil
}

// Load replaces the list with the spreadsheet contents. Tickets created or
// updated here whose writes the sheet does not reflect yet are kept, and
// their failed writes are queued again. When the sheet can't be read the
// list falls back to the last snapshot and the state reports disconnected.
func (s *RequestService) Load(ctx context.Context) SyncState {
	fetched, err := s.deps.Remote.Fetch(ctx)
	now := s.deps.Now()

	if err != nil {
		if !errors.Is(err, sheets.ErrNotConfigured) {
			log.Printf("Warning: failed to fetch repair requests, using snapshot: %v", err)
		}
		var cached []models.RepairRequest
		found, loadErr := s.deps.Store.Load(ctx, localstore.KeyRepairRequests, &cached)
		if loadErr != nil {
			log.Printf("Warning: failed to load repair request snapshot: %v", loadErr)
		}

		s.mu.Lock()
		if found {
			s.requests = cached
		}
		s.connected = boolPtr(false)
		s.lastError = err.Error()
		s.mu.Unlock()
		return s.State()
	}

	s.mu.Lock()
	s.requests = tracking.SortNewestFirst(s.mergeUnconfirmedLocked(fetched))
	s.connected = boolPtr(true)
	s.lastSyncAt = &now
	s.lastError = ""
	s.saveSnapshotLocked(ctx)
	count := len(s.requests)
	s.mu.Unlock()

	s.publish(EventRequestsSynced, supabase.RequestsSyncedPayload(count))
	return s.State()
}

// mergeUnconfirmedLocked lays local tickets with unconfirmed writes over the
// fetched rows and queues failed writes again.
func (s *RequestService) mergeUnconfirmedLocked(fetched []models.RepairRequest) []models.RepairRequest {
	rowIndex := make(map[string]int, len(fetched))
	for i, row := range fetched {
		rowIndex[row.ID] = i
	}

	for id, pending := range s.unconfirmed {
		index := s.indexLocked(id)
		if index < 0 {
			delete(s.unconfirmed, id)
			continue
		}
		local := s.requests[index]

		i, found := rowIndex[id]
		switch {
		case found && fetched[i].Status == local.Status && pending.inflight == 0:
			delete(s.unconfirmed, id)
			continue
		case found:
			fetched[i].Status = local.Status
		default:
			fetched = append(fetched, local)
		}

		if pending.inflight > 0 || !pending.failed {
			continue
		}
		if found {
			s.queueStatusWriteLocked(local.ID, local.Status)
		} else {
			s.queueAppendLocked(local)
		}
	}
	return fetched
}

func (s *RequestService) State() SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := SyncState{
		Configured: s.deps.Remote.Configured(),
		LastError:  s.lastError,
		Count:      len(s.requests),
	}
	if s.connected != nil {
		state.Connected = boolPtr(*s.connected)
	}
	if s.lastSyncAt != nil {
		at := *s.lastSyncAt
		state.LastSyncAt = &at
	}
	return state
}

// Create runs intake: it builds the ticket, attaches the diagnosis and photo,
// prepends it to the list and queues the spreadsheet append.
func (s *RequestService) Create(ctx context.Context, input models.CreateRepairRequest) (models.RepairRequest, error) {
	request, err := s.newRequest(input)
	if err != nil {
		return models.RepairRequest{}, err
	}
	defer s.release(request.ID)

	diagnosis := input.Diagnosis
	if diagnosis == nil && input.Diagnose {
		diagnosis = s.Diagnose(ctx, gemini.DiagnosisInput{
			Description: request.Description,
			CarBrand:    request.CarBrand,
			ServiceType: string(request.ServiceType),
			ImageURL:    request.ImageURL,
		})
	}
	if diagnosis != nil {
		diagnosis.Urgency = models.ParseUrgency(string(diagnosis.Urgency))
		request.AIDiagnosis = diagnosis.PossibleIssue
	}
	request.EstimatedCost = s.estimateCost(diagnosis, request.SelectedProductID)

	if s.deps.Photos != nil && strings.HasPrefix(request.ImageURL, "data:") {
		_, publicURL, err := s.deps.Photos.UploadPhoto(request.ID, request.ImageURL)
		if err != nil {
			log.Printf("Warning: failed to upload photo for %s, keeping inline image: %v", request.ID, err)
		} else {
			request.ImageURL = publicURL
		}
	}

	s.mu.Lock()
	s.requests = append([]models.RepairRequest{request}, s.requests...)
	s.saveSnapshotLocked(ctx)
	s.queueAppendLocked(request)
	s.mu.Unlock()

	log.Printf("Created repair request %s for %s", request.ID, request.CarBrand)

	s.publish(EventRequestCreated, supabase.RequestCreatedPayload(request))

	return request, nil
}

// UpdateStatus sets the ticket's status. Any status may follow any other.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, rawStatus string) (models.RepairRequest, error) {
	status, ok := models.ParseStatus(rawStatus)
	if !ok {
		return models.RepairRequest{}, fmt.Errorf("%q: %w", rawStatus, ErrInvalidStatus)
	}

	s.mu.Lock()
	index := s.indexLocked(id)
	if index < 0 {
		s.mu.Unlock()
		return models.RepairRequest{}, fmt.Errorf("request %q: %w", id, ErrNotFound)
	}
	previous := s.requests[index].Status

	updated := append([]models.RepairRequest(nil), s.requests...)
	updated[index].Status = status
	s.requests = updated
	request := updated[index]
	s.saveSnapshotLocked(ctx)
	s.queueStatusWriteLocked(id, status)
	s.mu.Unlock()

	log.Printf("Request %s status %s -> %s", id, previous, status)

	if previous != status && s.deps.Notifier != nil {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			ctx, cancel := context.WithTimeout(context.Background(), s.deps.WriteTimeout)
			defer cancel()
			if err := s.deps.Notifier.NotifyStatusChange(ctx, request); err != nil {
				log.Printf("Warning: failed to notify customer for %s: %v", id, err)
			}
		}()
	}
	s.publish(EventStatusUpdated, supabase.StatusUpdatedPayload(id, previous, status))

	return request, nil
}

// Diagnose returns nil when diagnosis is unavailable or fails; intake never
// depends on it.
func (s *RequestService) Diagnose(ctx context.Context, input gemini.DiagnosisInput) *models.DiagnosisResult {
	if s.deps.Diagnoser == nil {
		return nil
	}
	result, err := s.deps.Diagnoser.Diagnose(ctx, input)
	if err != nil {
		if !errors.Is(err, gemini.ErrDisabled) {
			log.Printf("Warning: diagnosis failed: %v", err)
		}
		return nil
	}
	return result
}

// List returns the tickets newest first, limited to statuses when given.
func (s *RequestService) List(statuses ...models.RepairStatus) []models.RepairRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tracking.FilterByStatus(tracking.SortNewestFirst(s.requests), statuses...)
}

func (s *RequestService) Get(id string) (models.RepairRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index := s.indexLocked(id)
	if index < 0 {
		return models.RepairRequest{}, fmt.Errorf("request %q: %w", id, ErrNotFound)
	}
	return s.requests[index], nil
}

func (s *RequestService) Search(query string) []models.RepairRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tracking.Search(s.requests, query)
}

// Flush blocks until queued spreadsheet writes and notifications finish.
func (s *RequestService) Flush() {
	s.inflight.Wait()
}

func (s *RequestService) newRequest(input models.CreateRepairRequest) (models.RepairRequest, error) {
	request := models.RepairRequest{
		CustomerName:      strings.TrimSpace(input.CustomerName),
		PhoneNumber:       strings.TrimSpace(input.PhoneNumber),
		CarBrand:          strings.TrimSpace(input.CarBrand),
		CarModel:          strings.TrimSpace(input.CarModel),
		Description:       strings.TrimSpace(input.Description),
		Status:            models.StatusPending,
		ImageURL:          strings.TrimSpace(input.ImageURL),
		SelectedProductID: strings.TrimSpace(input.SelectedProductID),
	}
	switch {
	case request.CustomerName == "":
		return request, fmt.Errorf("customer name is required: %w", ErrValidation)
	case request.PhoneNumber == "":
		return request, fmt.Errorf("phone number is required: %w", ErrValidation)
	case request.CarBrand == "":
		return request, fmt.Errorf("car brand is required: %w", ErrValidation)
	}

	serviceType, ok := models.ParseServiceType(input.ServiceType)
	if !ok {
		return request, fmt.Errorf("unknown service type %q: %w", input.ServiceType, ErrValidation)
	}
	request.ServiceType = serviceType

	now := s.deps.Now()
	request.CreatedAt = now.UTC().Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()
	request.ID = s.uniqueIDLocked(now.In(s.deps.Location).Format(ticketIDLayout))
	s.reserved[request.ID] = true
	return request, nil
}

func (s *RequestService) release(id string) {
	s.mu.Lock()
	delete(s.reserved, id)
	s.mu.Unlock()
}

func (s *RequestService) uniqueIDLocked(base string) string {
	id := base
	for n := 2; s.reserved[id] || s.indexLocked(id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func (s *RequestService) indexLocked(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}

var costPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// estimateCost takes the first number of the diagnosis range, then the
// selected product's base price.
func (s *RequestService) estimateCost(diagnosis *models.DiagnosisResult, productID string) *float64 {
	if diagnosis != nil {
		if cost, ok := ParseCost(diagnosis.EstimatedCostRange); ok {
			return &cost
		}
	}
	if productID != "" && s.deps.Catalog != nil {
		if product, ok := s.deps.Catalog.Service(productID); ok {
			price := product.BasePrice
			return &price
		}
	}
	return nil
}

// ParseCost extracts the first number in a free-text range such as
// "3,000 - 5,000 THB".
func ParseCost(text string) (float64, bool) {
	match := costPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func (s *RequestService) saveSnapshotLocked(ctx context.Context) {
	if err := s.deps.Store.Save(ctx, localstore.KeyRepairRequests, s.requests); err != nil {
		log.Printf("Warning: failed to save repair request snapshot: %v", err)
	}
}

func (s *RequestService) queueAppendLocked(request models.RepairRequest) {
	s.queueWriteLocked(request.ID, "append "+request.ID, func(ctx context.Context) error {
		return s.deps.Remote.Append(ctx, request)
	})
}

func (s *RequestService) queueStatusWriteLocked(id string, status models.RepairStatus) {
	s.queueWriteLocked(id, "update status "+id, func(ctx context.Context) error {
		return s.deps.Remote.UpdateStatus(ctx, id, status)
	})
}

// queueWriteLocked runs a spreadsheet write in the background with retries.
// The caller never sees the outcome; the ticket stays unconfirmed until the
// write lands or a later Load finds it in the sheet. s.mu must be held.
func (s *RequestService) queueWriteLocked(id, name string, write func(ctx context.Context) error) {
	if !s.deps.Remote.Configured() {
		return
	}

	pending, ok := s.unconfirmed[id]
	if !ok {
		pending = &pendingWrite{}
		s.unconfirmed[id] = pending
	}
	pending.inflight++

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.deps.WriteTimeout)
		defer cancel()

		err := s.deps.Remote.RetryWithBackoff(ctx, func() error {
			return write(ctx)
		}, s.deps.WriteRetries)
		if err != nil {
			log.Printf("Error: spreadsheet %s: %v", name, err)
		}
		s.confirmWrite(id, pending, err == nil)
	}()
}

func (s *RequestService) confirmWrite(id string, pending *pendingWrite, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending.inflight--
	if !ok {
		pending.failed = true
	}
	if pending.inflight == 0 && !pending.failed && s.unconfirmed[id] == pending {
		delete(s.unconfirmed, id)
	}
}

func (s *RequestService) publish(event string, payload map[string]interface{}) {
	if s.deps.Events != nil {
		s.deps.Events.PublishRequestEvent(event, payload)
	}
}

func boolPtr(v bool) *bool {
	return &v
}
