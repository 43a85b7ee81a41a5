package feed

// Event is one row of a user's activity feed. Events are appended by the
// film, user and review repositories inside the same transaction as the
// operation they describe.
type Event struct {
	ID        int64  `json:"eventId" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	Timestamp int64  `json:"timestamp" db:"event_ts"` // unix millis
	EntityID  int64  `json:"entityId" db:"entity_id"`
	EventType string `json:"eventType" db:"event_type"`
	Operation string `json:"operation" db:"operation"`
}

const (
	EventTypeLike   = "LIKE"
	EventTypeReview = "REVIEW"
	EventTypeFriend = "FRIEND"

	OperationAdd    = "ADD"
	OperationRemove = "REMOVE"
	OperationUpdate = "UPDATE"
)
