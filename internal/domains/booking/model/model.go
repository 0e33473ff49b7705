package model

import (
	"time"

	"teammeet/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldMeetingID = "meeting_id"
	FieldRoomID    = "room_id"
	FieldUserID    = "user_id"
	FieldDay       = "day"
	FieldStartHour = "start_hour"
	FieldEndHour   = "end_hour"
	FieldProjectID = "project_id"

	// DayFormat is the wire format for the booking day.
	DayFormat = "2006-01-02"
)

type Booking struct {
	ID        int64     `db:"id"`
	MeetingID int64     `db:"meeting_id"`
	RoomID    int64     `db:"room_id"`
	UserID    int64     `db:"user_id"`
	Day       time.Time `db:"day"`
	StartHour int       `db:"start_hour"`
	EndHour   int       `db:"end_hour"`
	RoomName  string    `db:"room_name"  table:"rooms"    column:"name"`
	UserEmail string    `db:"user_email" table:"users"    column:"email"`
	TeamID    int64     `db:"team_id"    table:"meetings" column:"team_id"`
	ProjectID int64     `db:"project_id" table:"teams"    column:"project_id"`
	model.Metadata
}

// GetJoinQuery joins the owning account table under the alias "users" so the
// select columns stay stable even when the table name comes from config. The
// repository swaps the default in with SetJoin at construction time.
func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id" +
		" JOIN users ON users.id = bookings.user_id" +
		" JOIN meetings ON meetings.id = bookings.meeting_id" +
		" JOIN teams ON teams.id = meetings.team_id" +
		" JOIN projects ON projects.id = teams.project_id"
}
