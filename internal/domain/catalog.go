package domain

import "time"

// Food and Place are the catalog entities. They are read-only from the
// order core's perspective; orders reference them by id after a name lookup.

type Food struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Place struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
