package models

type ProductCategory string

const (
	CategoryMaintenance ProductCategory = "Maintenance"
	CategoryRepair      ProductCategory = "Repair"
	CategoryCleaning    ProductCategory = "Cleaning"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryMaintenance, CategoryRepair, CategoryCleaning:
		return true
	}
	return false
}

type ServiceProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   float64         `json:"basePrice"`
	Category    ProductCategory `json:"category"`
	Icon        string          `json:"icon"`
}

type ShopInfo struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	OpenHours string `json:"openHours"`
}

func DefaultShopInfo() ShopInfo {
	return ShopInfo{
		Name:      "TECHNICAL AUTO SERVICE",
		Tagline:   "Smart car repair intake with AI-assisted diagnosis",
		Address:   "123 Sukhumvit Road, Bang Na, Bangkok 10260",
		Phone:     "02-123-4567",
		OpenHours: "Mon - Sat 08:30 - 18:00",
	}
}

func DefaultServiceProducts() []ServiceProduct {
	return []ServiceProduct{
		{ID: "1", Name: "Engine oil change", Description: "100% synthetic oil with a premium filter", BasePrice: 1500, Category: CategoryMaintenance, Icon: "🛢️"},
		{ID: "2", Name: "Brake system inspection", Description: "Discs and pads checked to dealer standard", BasePrice: 800, Category: CategoryRepair, Icon: "🛑"},
		{ID: "3", Name: "Engine bay cleaning", Description: "Deep clean with degreaser", BasePrice: 450, Category: CategoryCleaning, Icon: "✨"},
	}
}
