package notify

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire/hirewire/pkg/domain"
)

// Look pairs the glyph and accent color a category renders with.
type Look struct {
	Glyph string
	Color lipgloss.Color
}

// categoryLooks maps known categories to their visual treatment.
var categoryLooks = map[string]Look{
	domain.CategorySystem:     {Glyph: "⚙", Color: lipgloss.Color("#8890a0")},
	domain.CategoryJob:        {Glyph: "◆", Color: lipgloss.Color("#22d3ee")},
	domain.CategoryInvitation: {Glyph: "✉", Color: lipgloss.Color("#d4a844")},
	domain.CategoryPayment:    {Glyph: "$", Color: lipgloss.Color("#4ade80")},
	domain.CategoryMessage:    {Glyph: "¶", Color: lipgloss.Color("#b080d0")},
}

// defaultLook is the fallback for categories this client has never heard
// of. Unknown categories render, they never fail.
var defaultLook = Look{Glyph: "●", Color: lipgloss.Color("#606878")}

// CategoryLook resolves a notification category to its glyph and color.
func CategoryLook(category string) Look {
	if l, ok := categoryLooks[category]; ok {
		return l
	}
	return defaultLook
}
