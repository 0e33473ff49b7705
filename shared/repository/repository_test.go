package repository

import (
	"testing"

	"teammeet/infras/otel/mocks"
	"teammeet/shared/dto"
)

type listingFixture struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	StartHour   int    `db:"start_hour"`
	ProjectName string `db:"project_name" table:"projects" column:"name"`
}

func newFixtureRepo(t *testing.T) Repository[listingFixture] {
	t.Helper()

	return NewRepository[listingFixture]("fixture", "fixtures", "id", nil, mocks.NewOtel())
}

func TestSortColumn(t *testing.T) {
	repo := newFixtureRepo(t)

	tests := []struct {
		name   string
		sortBy string
		want   string
	}{
		{
			name:   "bare column name",
			sortBy: "start_hour",
			want:   "fixtures.start_hour",
		},
		{
			name:   "qualified column name",
			sortBy: "fixtures.name",
			want:   "fixtures.name",
		},
		{
			name:   "joined column by alias",
			sortBy: "project_name",
			want:   "projects.name",
		},
		{
			name:   "joined column qualified",
			sortBy: "projects.name",
			want:   "projects.name",
		},
		{
			name:   "unknown column falls back to primary",
			sortBy: "no_such_column",
			want:   "fixtures.id",
		},
		{
			name:   "hostile input never reaches the query",
			sortBy: "id; DROP TABLE fixtures --",
			want:   "fixtures.id",
		},
		{
			name:   "subexpression is rejected",
			sortBy: "(SELECT 1)",
			want:   "fixtures.id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.sortColumn(tt.sortBy); got != tt.want {
				t.Errorf("sortColumn(%q) = %q, want %q", tt.sortBy, got, tt.want)
			}
		})
	}
}

func TestSortDirection(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: "DESC", want: dto.SortDirDesc},
		{dir: "desc", want: dto.SortDirDesc},
		{dir: "ASC", want: dto.SortDirAsc},
		{dir: "sideways", want: dto.SortDirAsc},
		{dir: "ASC; DROP TABLE fixtures", want: dto.SortDirAsc},
	}

	for _, tt := range tests {
		if got := sortDirection(tt.dir); got != tt.want {
			t.Errorf("sortDirection(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestOrderClause(t *testing.T) {
	repo := newFixtureRepo(t)

	clause := repo.orderClause(dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc})
	if clause != "ORDER BY fixtures.name ASC" {
		t.Errorf("unexpected order clause %q", clause)
	}

	if clause := repo.orderClause(dto.QueryParams{}); clause != "" {
		t.Errorf("expected empty clause without sort params, got %q", clause)
	}
}

func TestOrderClauseTieBreaker(t *testing.T) {
	repo := newFixtureRepo(t)
	repo.SetTieBreaker("fixtures.start_hour DESC")

	clause := repo.orderClause(dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc})
	want := "ORDER BY fixtures.name ASC, fixtures.start_hour DESC"

	if clause != want {
		t.Errorf("orderClause() = %q, want %q", clause, want)
	}
}
