package model

import "teammeet/shared/model"

const (
	TableName  = "meetings"
	EntityName = "meeting"

	FieldID                  = "id"
	FieldTeamID              = "team_id"
	FieldTypeOfMeetingID     = "type_of_meeting_id"
	FieldRequiresMeetingRoom = "requires_meeting_room"
	FieldProjectID           = "project_id"
)

type Meeting struct {
	ID                  int64  `db:"id"`
	TeamID              int64  `db:"team_id"`
	TypeOfMeetingID     int64  `db:"type_of_meeting_id"`
	RequiresMeetingRoom bool   `db:"requires_meeting_room"`
	TeamName            string `db:"team_name"  table:"teams"         column:"name"`
	ProjectID           int64  `db:"project_id" table:"teams"         column:"project_id"`
	TypeName            string `db:"type_name"  table:"meeting_types" column:"name"`
	model.Metadata
}

func (Meeting) GetJoinQuery() string {
	return "JOIN teams ON teams.id = meetings.team_id" +
		" JOIN projects ON projects.id = teams.project_id" +
		" JOIN meeting_types ON meeting_types.id = meetings.type_of_meeting_id"
}
