package model

import "teammeet/shared/model"

const (
	TableName  = "meeting_types"
	EntityName = "meeting_type"

	FieldID   = "id"
	FieldName = "name"
)

const (
	TypeDaily       = "DAILY"
	TypeWeekly      = "WEEKLY"
	TypeUrgent      = "URGENT"
	TypeClient      = "CLIENT"
	TypeCelebration = "CELEBRATION"

	DefaultType = TypeWeekly
)

type MeetingType struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
