package models

// ItemEvent is the audit record published to Kafka for every
// administrative item mutation.
type ItemEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the mutation
	ItemID    string `json:"item_id"`   // Affected item
	Username  string `json:"username"`  // Owning username, empty for update/delete
	Operation string `json:"operation"` // "create", "update" or "delete"
}
