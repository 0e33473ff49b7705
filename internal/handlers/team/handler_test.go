package team

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	projectModel "teammeet/internal/domains/project/model"
	"teammeet/internal/domains/team/model"
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
			name:      "name matches by fragment",
			target:    "/v1/teams?name=plat",
			wantTable: model.TableName,
			wantField: model.FieldName,
			wantOp:    gDto.FilterOperatorLike,
			wantValue: "plat",
		},
		{
			name:      "project matches by name fragment",
			target:    "/v1/teams?project=apollo",
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
	assert.True(t, strings.Contains(model.Team{}.GetJoinQuery(), "JOIN projects"),
		"project name filter needs the projects relation joined in")
}
