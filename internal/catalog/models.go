package catalog

// Room defines a bookable suite. The catalog is static configuration:
// rooms are created at process start and never mutated.
type Room struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NightlyPrice int64  `json:"nightly_price"` // whole currency units, always > 0
	MaxGuests    int    `json:"max_guests"`
	Image        string `json:"image,omitempty"`
}

// DefaultRooms returns the compiled-in catalog seed, in catalog order.
func DefaultRooms() []Room {
	return []Room{
		{ID: "skyline-haven", Name: "Skyline Haven", NightlyPrice: 8500, MaxGuests: 4, Image: "/skyline-main.jpg"},
		{ID: "zen-nest", Name: "Zen Nest", NightlyPrice: 6500, MaxGuests: 4, Image: "/zen-main.jpg"},
		{ID: "sunlit-studio", Name: "Sunlit Studio", NightlyPrice: 7200, MaxGuests: 4, Image: "/sunlit-main.jpg"},
	}
}
