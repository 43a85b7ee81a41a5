package genre

// Genre is a reference lookup row (id, name), seeded by migration.
type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
