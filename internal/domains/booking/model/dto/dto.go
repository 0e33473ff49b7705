package dto

import (
	"time"

	"teammeet/internal/domains/booking/model"
	"teammeet/shared"
	gDto "teammeet/shared/dto"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

// CreateBookingRequest books a room for a new meeting. The meeting row and the
// booking row are written as one unit, so the request carries both the meeting
// fields and the slot fields.
type CreateBookingRequest struct {
	TeamID          int64  `json:"team_id"            validate:"required"`
	TypeOfMeetingID int64  `json:"type_of_meeting_id" validate:"required"`
	RoomID          int64  `json:"room_id"            validate:"required"`
	Day             string `json:"day"                validate:"required,datetime=2006-01-02"`
	StartHour       int    `json:"start_hour"         validate:"gte=0,lte=23"`
	EndHour         int    `json:"end_hour"           validate:"gte=1,lte=24,gtfield=StartHour"`
}

func (c *CreateBookingRequest) ToModel(meetingID, userID int64, user string) model.Booking {
	day, _ := time.Parse(model.DayFormat, c.Day)

	return model.Booking{
		MeetingID: meetingID,
		RoomID:    c.RoomID,
		UserID:    userID,
		Day:       day,
		StartHour: c.StartHour,
		EndHour:   c.EndHour,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateBookingRequest only exposes the scheduling fields. Repointing a
// booking at another meeting or owner is not supported; delete and rebook.
type UpdateBookingRequest struct {
	RoomID    *int64  `db:"room_id"    json:"room_id"    validate:"omitempty"`
	Day       *string `db:"day"        json:"day"        validate:"omitempty,datetime=2006-01-02"`
	StartHour *int    `db:"start_hour" json:"start_hour" validate:"omitempty,gte=0,lte=23"`
	EndHour   *int    `db:"end_hour"   json:"end_hour"   validate:"omitempty,gte=1,lte=24"`
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	MeetingID int64  `json:"meeting_id"`
	RoomID    int64  `json:"room_id"`
	RoomName  string `json:"room_name"`
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"user_email"`
	TeamID    int64  `json:"team_id"`
	ProjectID int64  `json:"project_id"`
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.MeetingID = mod.MeetingID
	r.RoomID = mod.RoomID
	r.RoomName = mod.RoomName
	r.UserID = mod.UserID
	r.UserEmail = mod.UserEmail
	r.TeamID = mod.TeamID
	r.ProjectID = mod.ProjectID
	r.Day = mod.Day.Format(model.DayFormat)
	r.StartHour = mod.StartHour
	r.EndHour = mod.EndHour
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is published to Kafka after every successful booking mutation.
type BookingEvent struct {
	Action    string `json:"action"`
	BookingID int64  `json:"booking_id"`
	MeetingID int64  `json:"meeting_id"`
	RoomID    int64  `json:"room_id"`
	UserID    int64  `json:"user_id"`
	Day       string `json:"day"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}
