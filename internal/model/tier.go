package model

// TierID identifies a price tier in URLs.
type TierID string

const (
	TierFree      TierID = "free"
	TierUnder500  TierID = "under-500"
	Tier500To749  TierID = "500-749"
	Tier750To1000 TierID = "750-1000"
)

// PriceTier is a named range of the price axis. Min and Max are both
// inclusive.
type PriceTier struct {
	ID    TierID `json:"id"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Contains reports whether price falls inside the tier.
func (t PriceTier) Contains(price int) bool {
	return price >= t.Min && price <= t.Max
}

// PriceTiers partitions [0, MaxPrice] without gaps or overlaps, in ascending
// order. 500 opens the 500-749 tier and 1000 closes the 750-1000 tier.
var PriceTiers = []PriceTier{
	{ID: TierFree, Label: "Free", Min: 0, Max: 0},
	{ID: TierUnder500, Label: "Under $500", Min: 1, Max: 499},
	{ID: Tier500To749, Label: "$500 to $749", Min: 500, Max: 749},
	{ID: Tier750To1000, Label: "$750 to $1,000", Min: 750, Max: MaxPrice},
}

// TierForPrice returns the single tier containing price. The second result
// is false for prices outside [0, MaxPrice].
func TierForPrice(price int) (PriceTier, bool) {
	for _, t := range PriceTiers {
		if t.Contains(price) {
			return t, true
		}
	}
	return PriceTier{}, false
}

// LookupTier finds a tier by its URL identifier.
func LookupTier(id TierID) (PriceTier, bool) {
	for _, t := range PriceTiers {
		if t.ID == id {
			return t, true
		}
	}
	return PriceTier{}, false
}
