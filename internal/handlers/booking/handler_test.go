package booking

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"teammeet/internal/domains/booking/model"
	projectModel "teammeet/internal/domains/project/model"
	roomModel "teammeet/internal/domains/room/model"
	gDto "teammeet/shared/dto"
)

func findFilter(group gDto.FilterGroup, table, field string) (gDto.Filter, bool) {
	for _, f := range group.Filters {
		flt, ok := f.(gDto.Filter)
		if ok && flt.Table == table && flt.Field == field {
			return flt, true
		}
	}

	return gDto.Filter{}, false
}

func TestFiltersFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantTable string
		wantField string
		wantOp    string
		wantValue any
	}{
		{
			name:      "room matches by name fragment",
			target:    "/v1/bookings?room=blue",
			wantTable: roomModel.TableName,
			wantField: roomModel.FieldName,
			wantOp:    gDto.FilterOperatorLike,
			wantValue: "blue",
		},
		{
			name:      "project matches by name fragment",
			target:    "/v1/bookings?project=apollo",
			wantTable: projectModel.TableName,
			wantField: projectModel.FieldName,
			wantOp:    gDto.FilterOperatorLike,
			wantValue: "apollo",
		},
		{
			name:      "day matches exactly",
			target:    "/v1/bookings?day=2026-09-14",
			wantTable: model.TableName,
			wantField: model.FieldDay,
			wantOp:    gDto.FilterOperatorEq,
			wantValue: "2026-09-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			group := filtersFromRequest(r)

			assert.Len(t, group.Filters, 1)

			flt, found := findFilter(group, tt.wantTable, tt.wantField)
			assert.True(t, found)
			assert.Equal(t, tt.wantOp, flt.Operator)
			assert.Equal(t, tt.wantValue, flt.Value)
		})
	}
}

func TestFiltersFromRequest_NoParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/bookings", nil)

	group := filtersFromRequest(r)

	assert.Empty(t, group.Filters)
}

func TestFiltersFromRequest_JoinedTables(t *testing.T) {
	join := model.Booking{}.GetJoinQuery()

	assert.True(t, strings.Contains(join, "JOIN rooms"),
		"room name filter needs the rooms relation joined in")
	assert.True(t, strings.Contains(join, "JOIN projects"),
		"project name filter needs the projects relation joined in")
}
