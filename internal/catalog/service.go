package catalog

// Service interface defines the contract for catalog lookups
type Service interface {
	All() []Room
	Lookup(id string) (Room, bool)
	ResolveOrDefault(id string) Room
	First() Room
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new catalog service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) All() []Room {
	return s.repo.All()
}

func (s *service) Lookup(id string) (Room, bool) {
	return s.repo.FindByID(id)
}

// ResolveOrDefault resolves a room id, falling back to the catalog's
// first entry when the id is unknown. Unknown ids are never an error:
// the booking surface only ever offers valid ids, and deep links with
// stale ids degrade to the default selection.
func (s *service) ResolveOrDefault(id string) Room {
	if room, ok := s.repo.FindByID(id); ok {
		return room
	}
	return s.First()
}

func (s *service) First() Room {
	rooms := s.repo.All()
	if len(rooms) == 0 {
		return Room{}
	}
	return rooms[0]
}
