package models

type Category string

const (
	CategoryMouse      Category = "mouse"
	CategoryKeyboard   Category = "keyboard"
	CategoryHeadset    Category = "headset"
	CategoryMonitor    Category = "monitor"
	CategoryChair      Category = "chair"
	CategoryController Category = "controller"
	CategoryStreaming  Category = "streaming"
)

// Categories lists every category in catalog order.
var Categories = []Category{
	CategoryMouse,
	CategoryKeyboard,
	CategoryHeadset,
	CategoryMonitor,
	CategoryChair,
	CategoryController,
	CategoryStreaming,
}

// CategoryFilterAll selects every product in a shop listing.
const CategoryFilterAll = "all"

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Product is immutable once the catalog has been generated.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	Rating      float64  `json:"rating"`
}

type CategoryInfo struct {
	ID      Category `json:"id"`
	Label   string   `json:"label"`
	Tagline string   `json:"tagline"`
	Image   string   `json:"image"`
}
