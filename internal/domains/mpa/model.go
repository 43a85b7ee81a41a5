package mpa

// Rating is a film's age/content classification (G, PG, PG-13, R, NC-17).
// The table is seeded by migration and read-only at runtime.
type Rating struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
