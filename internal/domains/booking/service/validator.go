package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"teammeet/internal/domains/booking/model"
	gDto "teammeet/shared/dto"
	"teammeet/shared/failure"
)

// slot is a candidate reservation to be checked against every other booking
// for the same room and day.
type slot struct {
	excludingID int64
	roomID      int64
	day         time.Time
	startHour   int
	endHour     int
}

// validateSlot runs on the open transaction so the check and the write that
// follows see the same snapshot. Rooms are booked per whole hour; a booking
// occupies [startHour, endHour) so back-to-back bookings never collide.
//
// Two checks run in order and the first hit wins:
//  1. another booking starts inside the candidate window, meaning the
//     candidate's end overlaps it;
//  2. another booking ends inside the candidate window, meaning the
//     candidate's start overlaps it.
func (s *serviceImpl) validateSlot(ctx context.Context, tx *sqlx.Tx, cand slot) error {
	if cand.startHour >= cand.endHour {
		return failure.BadRequestFromString("start time must be before end time")
	}

	startConflict, err := s.repo.ExistTx(ctx, tx, cand.overlapFilter(model.FieldStartHour, cand.startHour, cand.endHour-1))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking start conflicts")

		return fmt.Errorf("failed to check booking start conflicts: %w", err)
	}

	if startConflict {
		return failure.BadRequestFromString("end time conflicts with another meeting")
	}

	endConflict, err := s.repo.ExistTx(ctx, tx, cand.overlapFilter(model.FieldEndHour, cand.startHour+1, cand.endHour))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking end conflicts")

		return fmt.Errorf("failed to check booking end conflicts: %w", err)
	}

	if endConflict {
		return failure.BadRequestFromString("start time conflicts with another meeting")
	}

	return nil
}

// overlapFilter matches other bookings of the same room and day whose given
// hour column falls inside [from, to]. The candidate's own row is skipped on
// reschedules.
func (c slot) overlapFilter(hourField string, from, to int) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorEq,
			Value:    c.roomID,
		},
		gDto.Filter{
			Field:    model.FieldDay,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorEq,
			Value:    c.day.Format(model.DayFormat),
		},
		gDto.Filter{
			Field:    hourField,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			ArgName:  hourField + "_from",
		},
		gDto.Filter{
			Field:    hourField,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorLessEq,
			Value:    to,
			ArgName:  hourField + "_to",
		},
	}

	if c.excludingID > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorNotEq,
			Value:    c.excludingID,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
