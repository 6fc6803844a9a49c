package entities

import "time"

// CollectionState records that a collection has been persisted at
// least once. An empty table alone cannot distinguish "never written"
// from "emptied by the user", and the template seed must only run on a
// true first load.
type CollectionState struct {
	Name          string    `gorm:"primary_key" json:"name"`
	InitializedAt time.Time `gorm:"type:timestamp" json:"initialized_at"`
}
