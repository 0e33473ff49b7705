package model

import "teammeet/shared/model"

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
)

type Project struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Image       string `db:"image"`
	model.Metadata
}
