package domain

// Project is a single portfolio entry shown in the public gallery.
// Projects are created and deleted by the admin; there is no edit path.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	ColorPalette string   `json:"colorPalette,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// NewProject carries the admin-supplied fields for a project; the store
// assigns the id.
type NewProject struct {
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	ColorPalette string   `json:"colorPalette,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Portfolio categories
const (
	CategoryStore     = "متاجر"
	CategoryCorporate = "شركات"
	CategoryPersonal  = "شخصي"
)

// Color palettes
const (
	PaletteBlue   = "أزرق"
	PaletteGold   = "ذهبي"
	PalettePurple = "أرجواني"
	PaletteGreen  = "أخضر"
)

// SiteOrder is a customer's website request plus its fulfillment state.
// Status only moves forward: pending -> generated -> complete.
type SiteOrder struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
	Date         string `json:"date"`
	Price        string `json:"price,omitempty"`
	HTMLContent  string `json:"htmlContent,omitempty"`
}

// NewOrder carries the fields captured from a chat session at agreement time.
type NewOrder struct {
	CustomerName string `json:"customerName"`
	Requirements string `json:"requirements"`
	Price        string `json:"price,omitempty"`
}

// Order status values, kept as the customer-facing Arabic strings.
const (
	StatusPending   = "قيد الانتظار"
	StatusGenerated = "تم التوليد"
	StatusComplete  = "مكتمل"
)

// StatusRank maps a status to its position in the lifecycle.
// Returns -1 for unknown values.
func StatusRank(status string) int {
	switch status {
	case StatusPending:
		return 0
	case StatusGenerated:
		return 1
	case StatusComplete:
		return 2
	}
	return -1
}

// Settings is the site-wide record edited from the admin dashboard.
type Settings struct {
	SiteName string `json:"siteName"`
	Email    string `json:"email"`
}

// DefaultSettings returns the values used before the settings document has
// ever been written.
func DefaultSettings() Settings {
	return Settings{
		SiteName: "محمد العثماني",
		Email:    "almanswro553@gmail.com",
	}
}
