package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"autoservice-backend/internal/localstore"
	"autoservice-backend/internal/models"

	"github.com/google/uuid"
)

// CatalogService owns the service catalog and shop profile. Both live only in
// the local snapshot store.
type CatalogService struct {
	store localstore.Store

	mu       sync.RWMutex
	products []models.ServiceProduct
	shop     models.ShopInfo
}

func NewCatalogService(store localstore.Store) *CatalogService {
	return &CatalogService{
		store:    store,
		products: models.DefaultServiceProducts(),
		shop:     models.DefaultShopInfo(),
	}
}

// Restore loads both slots from the store. Empty slots keep the defaults.
func (s *CatalogService) Restore(ctx context.Context) error {
	var products []models.ServiceProduct
	foundProducts, err := s.store.Load(ctx, localstore.KeyServiceProducts, &products)
	if err != nil {
		return err
	}

	var shop models.ShopInfo
	foundShop, err := s.store.Load(ctx, localstore.KeyShopInfo, &shop)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if foundProducts {
		s.products = products
	}
	if foundShop {
		s.shop = shop
	}
	log.Printf("Catalog restored: %d services (snapshot: %t), shop %q", len(s.products), foundProducts, s.shop.Name)
	return nil
}

func (s *CatalogService) Services() []models.ServiceProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServiceProduct(nil), s.products...)
}

func (s *CatalogService) Service(id string) (models.ServiceProduct, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, product := range s.products {
		if product.ID == id {
			return product, true
		}
	}
	return models.ServiceProduct{}, false
}

// SaveService creates the product, or replaces the one with the same id.
// Products without an id get a fresh UUID.
func (s *CatalogService) SaveService(ctx context.Context, product models.ServiceProduct) (models.ServiceProduct, error) {
	product.Name = strings.TrimSpace(product.Name)
	if err := validateProduct(product); err != nil {
		return models.ServiceProduct{}, err
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append([]models.ServiceProduct(nil), s.products...)
	replaced := false
	for i := range updated {
		if updated[i].ID == product.ID {
			updated[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, product)
	}

	if err := s.store.Save(ctx, localstore.KeyServiceProducts, updated); err != nil {
		return models.ServiceProduct{}, fmt.Errorf("failed to save services: %w", err)
	}
	s.products = updated
	return product, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.ServiceProduct, 0, len(s.products))
	for _, product := range s.products {
		if product.ID != id {
			updated = append(updated, product)
		}
	}
	if len(updated) == len(s.products) {
		return fmt.Errorf("service %q: %w", id, ErrNotFound)
	}

	if err := s.store.Save(ctx, localstore.KeyServiceProducts, updated); err != nil {
		return fmt.Errorf("failed to save services: %w", err)
	}
	s.products = updated
	return nil
}

// ReplaceServices swaps the whole catalog.
func (s *CatalogService) ReplaceServices(ctx context.Context, products []models.ServiceProduct) error {
	updated := make([]models.ServiceProduct, 0, len(products))
	for _, product := range products {
		product.Name = strings.TrimSpace(product.Name)
		if err := validateProduct(product); err != nil {
			return err
		}
		if product.ID == "" {
			product.ID = uuid.New().String()
		}
		updated = append(updated, product)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, localstore.KeyServiceProducts, updated); err != nil {
		return fmt.Errorf("failed to save services: %w", err)
	}
	s.products = updated
	return nil
}

func (s *CatalogService) Shop() models.ShopInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shop
}

func (s *CatalogService) SaveShop(ctx context.Context, info models.ShopInfo) (models.ShopInfo, error) {
	info.Name = strings.TrimSpace(info.Name)
	if info.Name == "" {
		return models.ShopInfo{}, fmt.Errorf("shop name is required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, localstore.KeyShopInfo, info); err != nil {
		return models.ShopInfo{}, fmt.Errorf("failed to save shop info: %w", err)
	}
	s.shop = info
	return info, nil
}

func validateProduct(product models.ServiceProduct) error {
	if product.Name == "" {
		return fmt.Errorf("service name is required: %w", ErrValidation)
	}
	if product.BasePrice < 0 {
		return fmt.Errorf("base price must not be negative: %w", ErrValidation)
	}
	if !product.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", product.Category, ErrValidation)
	}
	return nil
}
