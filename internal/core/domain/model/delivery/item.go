package delivery

// Item describes what the courier carries.
type Item struct {
	Quantity             string
	Weight               string
	Categories           []string
	HandlingInstructions []string
}

// DefaultItem is the single light food parcel every storefront order ships as.
func DefaultItem() Item {
	return Item{
		Quantity:             "1",
		Weight:               "LESS_THAN_3KG",
		Categories:           []string{"FOOD_DELIVERY"},
		HandlingInstructions: []string{"KEEP_UPRIGHT"},
	}
}
