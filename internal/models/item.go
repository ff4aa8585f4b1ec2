package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemDB represents a catalog item record in the database.
// An item belongs to a user by username only; there is no foreign key.
type ItemDB struct {
	ItemID      uuid.UUID  `json:"item_id" db:"item_id"`         // Store-generated primary key
	Username    string     `json:"username" db:"username"`       // Owning username
	Picture1    string     `json:"picture1" db:"picture1"`       // Picture reference (URL or path)
	Picture2    string     `json:"picture2" db:"picture2"`       // Picture reference
	Picture3    string     `json:"picture3" db:"picture3"`       // Picture reference
	Name        string     `json:"name" db:"name"`               // Display name
	Description string     `json:"description" db:"description"` // Free-form description
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`   // NULL until first edit
	DeletedAt   *time.Time `json:"deleted_at" db:"deleted_at"`   // Defined but never set; deletes are hard
}
