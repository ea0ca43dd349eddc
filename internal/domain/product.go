package domain

// Product is a catalog record. Products are created once by the seed step
// at process start and never mutated afterwards.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Model       string `json:"model"`
	Description string `json:"description"`
	// Price is a decimal amount kept as a string so currency math never
	// goes through binary floating point.
	Price            string            `json:"price"`
	Category         string            `json:"category"`
	ImageURL         string            `json:"imageUrl"`
	AdditionalImages []string          `json:"additionalImages,omitempty"`
	InStock          bool              `json:"inStock"`
	Specifications   map[string]string `json:"specifications,omitempty"`
}
