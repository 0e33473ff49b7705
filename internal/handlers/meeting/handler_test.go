package meeting

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"teammeet/internal/domains/meeting/model"
	projectModel "teammeet/internal/domains/project/model"
	gDto "teammeet/shared/dto"
)

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
			name:      "team matches by id",
			target:    "/v1/meetings?team=4",
			wantTable: model.TableName,
			wantField: model.FieldTeamID,
			wantOp:    gDto.FilterOperatorEq,
			wantValue: "4",
		},
		{
			name:      "project matches by name fragment",
			target:    "/v1/meetings?project=apollo",
			wantTable: projectModel.TableName,
			wantField: projectModel.FieldName,
			wantOp:    gDto.FilterOperatorLike,
			wantValue: "apollo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			group := filtersFromRequest(r)

			assert.Len(t, group.Filters, 1)

			flt, ok := group.Filters[0].(gDto.Filter)
			assert.True(t, ok)
			assert.Equal(t, tt.wantTable, flt.Table)
			assert.Equal(t, tt.wantField, flt.Field)
			assert.Equal(t, tt.wantOp, flt.Operator)
			assert.Equal(t, tt.wantValue, flt.Value)
		})
	}
}

func TestFiltersFromRequest_JoinedTables(t *testing.T) {
	assert.True(t, strings.Contains(model.Meeting{}.GetJoinQuery(), "JOIN projects"),
		"project name filter needs the projects relation joined in")
}
