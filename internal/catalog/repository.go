package catalog

// Repository is the inventory seam. The in-memory implementation carries
// the compiled-in catalog; a real deployment would back this with an
// external inventory service.
type Repository interface {
	All() []Room
	FindByID(id string) (Room, bool)
}

type memoryRepository struct {
	rooms []Room
	byID  map[string]Room
}

// NewMemoryRepository creates a repository over a fixed set of rooms,
// preserving catalog order.
func NewMemoryRepository(rooms []Room) Repository {
	byID := make(map[string]Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	return &memoryRepository{
		rooms: rooms,
		byID:  byID,
	}
}

func (r *memoryRepository) All() []Room {
	// Copy so callers cannot mutate the catalog.
	out := make([]Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *memoryRepository) FindByID(id string) (Room, bool) {
	room, ok := r.byID[id]
	return room, ok
}
