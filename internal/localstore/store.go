package localstore

import "context"

// Snapshot slots. Each holds one full JSON document.
const (
	KeyRepairRequests  = "repair_requests"
	KeyServiceProducts = "service_products"
	KeyShopInfo        = "shop_info"
)

// Store is a key-value side cache of whole snapshots.
type Store interface {
	// Load decodes the slot into v. It reports false when the slot is empty.
	Load(ctx context.Context, key string, v interface{}) (bool, error)
	Save(ctx context.Context, key string, v interface{}) error
}
