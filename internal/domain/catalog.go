package domain

// Barber represents a staff member appointments are assigned to
type Barber struct {
	ID       int64
	Name     string
	PhotoURL *string
	Active   bool
}

// Service represents a bookable service from the catalog
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Description     *string
}
