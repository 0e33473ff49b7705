package model

import "teammeet/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldCapacity     = "capacity"
	FieldHasProjector = "has_projector"
	FieldIsSoundproof = "is_soundproof"
)

type Room struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Capacity     int    `db:"capacity"`
	HasProjector bool   `db:"has_projector"`
	IsSoundproof bool   `db:"is_soundproof"`
	model.Metadata
}
