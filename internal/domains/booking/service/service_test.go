package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"teammeet/config"
	kafkaMocks "teammeet/infras/kafka/mocks"
	"teammeet/infras/otel/mocks"
	pgMocks "teammeet/infras/postgres/mocks"
	bookingMocks "teammeet/internal/domains/booking/mocks"
	"teammeet/internal/domains/booking/model"
	"teammeet/internal/domains/booking/model/dto"
	"teammeet/internal/domains/booking/service"
	meetingMocks "teammeet/internal/domains/meeting/mocks"
	typeMocks "teammeet/internal/domains/meetingtype/mocks"
	roomMocks "teammeet/internal/domains/room/mocks"
	teamMocks "teammeet/internal/domains/team/mocks"
	cacheMocks "teammeet/shared/cache/mocks"
	"teammeet/shared/constant"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
	gModel "teammeet/shared/model"
	"teammeet/shared/timezone"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	meetings     *meetingMocks.MockMeeting
	rooms        *roomMocks.MockRoom
	teams        *teamMocks.MockTeam
	meetingTypes *typeMocks.MockMeetingType
	txRunner     *pgMocks.MockTxRunner
	producer     *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		meetings:     meetingMocks.NewMockMeeting(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		teams:        teamMocks.NewMockTeam(ctrl),
		meetingTypes: typeMocks.NewMockMeetingType(ctrl),
		txRunner:     pgMocks.NewMockTxRunner(ctrl),
		producer:     kafkaMocks.NewMockClient(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "team-meet.booking-events"

	// Cache invalidation and event publishing run on detached goroutines
	// after a successful mutation, so they must never fail an expectation.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		m.repo, m.meetings, m.rooms, m.teams, m.meetingTypes,
		m.txRunner, m.producer, cfg, m.cache, mocks.NewOtel(),
	)

	return svc, m
}

func bookingContext(userID int64, email string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, email)
}

func passThroughTx(m bookingMockSet) {
	m.txRunner.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func referencesExist(m bookingMockSet) {
	m.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.teams.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.meetingTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	req := dto.CreateBookingRequest{
		TeamID:          1,
		TypeOfMeetingID: 2,
		RoomID:          3,
		Day:             "2026-09-14",
		StartHour:       10,
		EndHour:         12,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   string
		wantCode  int
		wantID    int64
	}{
		{
			name: "successful booking",
			req:  req,
			setupMock: func() {
				referencesExist(m)
				passThroughTx(m)

				m.meetings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(77), nil)

				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(5), nil)
			},
			wantID: 5,
		},
		{
			name: "another booking starts inside the window",
			req:  req,
			setupMock: func() {
				referencesExist(m)
				passThroughTx(m)

				m.meetings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(77), nil)

				// The meeting starting at 11 collides with [10, 12).
				// The booking row must never be written.
				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "end time conflicts with another meeting",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "another booking ends inside the window",
			req:  req,
			setupMock: func() {
				referencesExist(m)
				passThroughTx(m)

				m.meetings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(77), nil)

				first := m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil).
					After(first)
			},
			wantErr:  "start time conflicts with another meeting",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "start hour not before end hour",
			req: dto.CreateBookingRequest{
				TeamID:          1,
				TypeOfMeetingID: 2,
				RoomID:          3,
				Day:             "2026-09-14",
				StartHour:       12,
				EndHour:         12,
			},
			setupMock: func() {
				referencesExist(m)
				passThroughTx(m)

				m.meetings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(77), nil)
			},
			wantErr:  "start time must be before end time",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed day",
			req: dto.CreateBookingRequest{
				TeamID:          1,
				TypeOfMeetingID: 2,
				RoomID:          3,
				Day:             "14-09-2026",
				StartHour:       10,
				EndHour:         12,
			},
			setupMock: func() {},
			wantErr:   "day must be in YYYY-MM-DD format",
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room does not exist",
			req:  req,
			setupMock: func() {
				m.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  "room not found",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "team does not exist",
			req:  req,
			setupMock: func() {
				m.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.teams.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  "team not found",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "meeting type does not exist",
			req:  req,
			setupMock: func() {
				m.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.teams.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.meetingTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  "meeting type not found",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "exclusion constraint trips under concurrency",
			req:  req,
			setupMock: func() {
				referencesExist(m)
				passThroughTx(m)

				m.meetings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(77), nil)

				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
			},
			wantErr:  "room is already booked for this slot",
			wantCode: http.StatusConflict,
		},
		{
			name: "meeting insert error",
			req:  req,
			setupMock: func() {
				referencesExist(m)
				passThroughTx(m)

				m.meetings.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: "failed to create meeting for booking: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := bookingContext(9, "owner@example.com")
			id, err := svc.Create(ctx, tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBookingService_Create_BackToBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	// A booking ending exactly where another starts occupies [10, 12) and
	// [12, 14): both conflict probes must come back empty.
	referencesExist(m)
	passThroughTx(m)

	m.meetings.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(77), nil)

	m.repo.EXPECT().
		ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(2)

	m.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(6), nil)

	id, err := svc.Create(bookingContext(9, "owner@example.com"), dto.CreateBookingRequest{
		TeamID:          1,
		TypeOfMeetingID: 2,
		RoomID:          3,
		Day:             "2026-09-14",
		StartHour:       12,
		EndHour:         14,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(6), id)
}

func existingBooking(ownerID int64) model.Booking {
	day, _ := time.Parse(model.DayFormat, "2026-09-14")

	return model.Booking{
		ID:        5,
		MeetingID: 77,
		RoomID:    3,
		UserID:    ownerID,
		Day:       day,
		StartHour: 10,
		EndHour:   12,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "owner@example.com",
			ModifiedBy: "owner@example.com",
		},
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	newStart := 13
	newEnd := 15
	newRoom := int64(4)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		userID    int64
		setupMock func()
		wantErr   string
		wantCode  int
	}{
		{
			name:   "successful reschedule",
			req:    dto.UpdateBookingRequest{StartHour: &newStart, EndHour: &newEnd},
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)

				passThroughTx(m)

				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "move to another room",
			req:    dto.UpdateBookingRequest{RoomID: &newRoom},
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)

				m.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

				passThroughTx(m)

				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateBookingRequest{},
			userID:    9,
			setupMock: func() {},
			wantErr:   "update request cannot be empty",
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "booking not found",
			req:    dto.UpdateBookingRequest{StartHour: &newStart, EndHour: &newEnd},
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  "booking not found",
			wantCode: http.StatusNotFound,
		},
		{
			name:   "caller does not own the booking",
			req:    dto.UpdateBookingRequest{StartHour: &newStart, EndHour: &newEnd},
			userID: 13,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)
			},
			wantErr:  "only the booking owner can modify it",
			wantCode: http.StatusForbidden,
		},
		{
			name:   "new slot collides",
			req:    dto.UpdateBookingRequest{StartHour: &newStart, EndHour: &newEnd},
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)

				passThroughTx(m)

				m.repo.EXPECT().
					ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  "end time conflicts with another meeting",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := bookingContext(tt.userID, "owner@example.com")
			err := svc.Update(ctx, tt.req, 5)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Keeping the old slot while changing nothing else must exclude the booking's
// own row from the conflict probes, otherwise every no-op reschedule fails.
func TestBookingService_Update_ExcludesOwnRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	sameStart := 10

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(existingBooking(9), nil)

	passThroughTx(m)

	m.repo.EXPECT().
		ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
			var excluded bool

			for _, f := range filter.Filters {
				flt, ok := f.(gDto.Filter)
				if ok && flt.Operator == gDto.FilterOperatorNotEq && flt.Value == int64(5) {
					excluded = true
				}
			}

			assert.True(t, excluded, "conflict probe must skip the booking being rescheduled")

			return false, nil
		}).
		Times(2)

	m.repo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.Update(bookingContext(9, "owner@example.com"), dto.UpdateBookingRequest{StartHour: &sameStart}, 5)

	assert.NoError(t, err)
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		userID    int64
		setupMock func()
		wantErr   string
		wantCode  int
	}{
		{
			name:   "successful delete removes meeting too",
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)

				passThroughTx(m)

				m.repo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.meetings.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "booking not found",
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  "booking not found",
			wantCode: http.StatusNotFound,
		},
		{
			name:   "caller does not own the booking",
			userID: 13,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)
			},
			wantErr:  "only the booking owner can modify it",
			wantCode: http.StatusForbidden,
		},
		{
			name:   "meeting delete error rolls the booking back",
			userID: 9,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)

				passThroughTx(m)

				m.repo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.meetings.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: "failed to delete meeting of booking: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := bookingContext(tt.userID, "owner@example.com")
			err := svc.Delete(ctx, 5)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_MyBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			assertOwnerFilter(t, filter)

			return 1, nil
		})

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assertOwnerFilter(t, filter)

			return []model.Booking{existingBooking(9)}, nil
		})

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.MyBookings(bookingContext(9, "owner@example.com"), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Bookings, 1)
}

func assertOwnerFilter(t *testing.T, filter gDto.FilterGroup) {
	t.Helper()

	var found bool

	for _, f := range filter.Filters {
		flt, ok := f.(gDto.Filter)
		if ok && flt.Field == model.FieldUserID && flt.Value == int64(9) {
			found = true
		}
	}

	assert.True(t, found, "listing must be narrowed to the caller's bookings")
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(9), nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantID: 5,
		},
		{
			name: "booking not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), 5)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, res.ID)
				}
			}
		})
	}
}
