package market

// AssetID uniquely identifies a listed asset. IDs are dense indices into
// the registry's asset arena and double as the trader holdings index.
type AssetID int

// Category groups assets into broad sectors.
type Category uint8

const (
	CategoryTech Category = iota
	CategoryRetail
	CategoryFinance
	CategoryMining
	CategoryIndustrial

	NumCategories = 5
)

func (c Category) String() string {
	switch c {
	case CategoryTech:
		return "Tech"
	case CategoryRetail:
		return "Retail"
	case CategoryFinance:
		return "Finance"
	case CategoryMining:
		return "Mining"
	case CategoryIndustrial:
		return "Industrial"
	default:
		return "UNKNOWN"
	}
}
