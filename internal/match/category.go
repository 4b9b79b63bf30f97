package match

// Category is a coarse topic tag used to boost topically aligned matches.
type Category string

const (
	// CategoryCustomerService covers support, contact, and availability questions.
	CategoryCustomerService Category = "customer_service"
	// CategoryProduct covers what-do-you-sell questions.
	CategoryProduct Category = "product"
	// CategoryCompany covers mission and company-background questions.
	CategoryCompany Category = "company"
	// CategoryWarranty covers warranty, repair, and replacement questions.
	CategoryWarranty Category = "warranty"
)

// categoryKeywords is the fixed keyword table backing classification and the
// category score bonus. Read-only at runtime.
var categoryKeywords = map[Category][]string{
	CategoryCustomerService: {
		"customer", "service", "support", "contact", "help",
		"center", "centres", "centers", "available", "location",
	},
	CategoryProduct:  {"make", "product", "sell", "offer", "available", "buy"},
	CategoryCompany:  {"mission", "vision", "philips", "company", "business", "about"},
	CategoryWarranty: {"warranty", "guarantee", "repair", "replace", "service"},
}

// allCategories fixes the classification order so results are deterministic.
var allCategories = []Category{
	CategoryCustomerService,
	CategoryProduct,
	CategoryCompany,
	CategoryWarranty,
}

// Classify returns every category whose keyword set intersects the token set.
// Categories are independent tags: a query may map to zero, one, or several.
func Classify(tokens TokenSet) []Category {
	var categories []Category
	for _, category := range allCategories {
		for _, keyword := range categoryKeywords[category] {
			if tokens.Contains(keyword) {
				categories = append(categories, category)
				break
			}
		}
	}
	return categories
}
