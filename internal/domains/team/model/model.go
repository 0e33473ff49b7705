package model

import "teammeet/shared/model"

const (
	TableName  = "teams"
	EntityName = "team"

	FieldID           = "id"
	FieldName         = "name"
	FieldNumOfMembers = "num_of_members"
	FieldProjectID    = "project_id"
)

type Team struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	NumOfMembers int    `db:"num_of_members"`
	ProjectID    int64  `db:"project_id"`
	ProjectName  string `db:"project_name" table:"projects" column:"name"`
	model.Metadata
}

func (Team) GetJoinQuery() string {
	return "JOIN projects ON projects.id = teams.project_id"
}
