package director

// Director is a reference row films point to through film_directors.
type Director struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
