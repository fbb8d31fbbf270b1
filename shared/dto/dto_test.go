package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 12, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stamped", func(t *testing.T) {
		var metadata dto.Metadata
		metadata.FromModel(model.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt.Add(26 * time.Hour),
			CreatedBy:  "guest",
			ModifiedBy: "admin",
		})

		parsed, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
		assert.NoError(t, err)
		assert.True(t, parsed.Equal(createdAt))
		assert.NotEqual(t, metadata.CreatedAt, metadata.ModifiedAt)
		assert.Equal(t, "guest", metadata.CreatedBy)
		assert.Equal(t, "admin", metadata.ModifiedBy)
	})

	t.Run("zero times stay empty", func(t *testing.T) {
		var metadata dto.Metadata
		metadata.FromModel(model.NewMetadata("guest", time.Time{}))

		assert.Empty(t, metadata.CreatedAt)
		assert.Empty(t, metadata.ModifiedAt)
	})
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=check_in_date&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults when missing",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "nothing without defaults",
			want: dto.QueryParams{},
		},
		{
			name:         "malformed numbers fall back",
			query:        "page=abc&limit=-10",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "zero page falls back",
			query:        "page=0",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "unknown direction ignored",
			query: "sort_dir=sideways",
			want:  dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/bookings/all?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, params)
		})
	}
}

func TestQueryParams_Sanitized(t *testing.T) {
	sortable := []string{"created_at", "check_in_date"}

	tests := []struct {
		name   string
		params dto.QueryParams
		want   dto.QueryParams
	}{
		{
			name:   "allowed column kept",
			params: dto.QueryParams{Page: 1, Limit: 10, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
			want:   dto.QueryParams{Page: 1, Limit: 10, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
		},
		{
			name:   "unknown column replaced",
			params: dto.QueryParams{Page: 1, Limit: 10, SortBy: "password; DROP TABLE bookings"},
			want:   dto.QueryParams{Page: 1, Limit: 10, SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
		{
			name:   "limit capped",
			params: dto.QueryParams{Page: 1, Limit: 5000},
			want:   dto.QueryParams{Page: 1, Limit: constant.MaxValueLimit, SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Sanitized(sortable...))
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			filter:    dto.Eq("bookings", "status", "Pending"),
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "Pending"},
		},
		{
			name:      "renamed argument",
			filter:    dto.Eq("bookings", "status", "Pending").As("current_status"),
			wantWhere: "bookings.status = :current_status",
			wantArgs:  map[string]any{"current_status": "Pending"},
		},
		{
			name:      "inequality",
			filter:    dto.NotEq("users", "id", "u-1"),
			wantWhere: "users.id != :id",
			wantArgs:  map[string]any{"id": "u-1"},
		},
		{
			name:      "in list",
			filter:    dto.Filter{Field: "room_type", Operator: dto.FilterOperatorIn, Value: []string{"Deluxe Room", "Family Suite"}},
			wantWhere: "room_type IN (:room_type_0, :room_type_1)",
			wantArgs:  map[string]any{"room_type_0": "Deluxe Room", "room_type_1": "Family Suite"},
		},
		{
			name:      "null check",
			filter:    dto.Filter{Field: "receipt_url", Table: "bookings", Operator: dto.FilterIsNull},
			wantWhere: "bookings.receipt_url IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_And(t *testing.T) {
	base := dto.Where(dto.Eq("bookings", "id", "b-1"))
	guarded := base.And(dto.Eq("bookings", "status", "Pending").As("current_status"))

	assert.Len(t, base.Filters, 1)

	where, args := guarded.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id AND bookings.status = :current_status)", where)
	assert.Equal(t, map[string]any{"id": "b-1", "current_status": "Pending"}, args)

	either := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters:  []any{dto.Eq("", "a", 1), dto.Eq("", "b", 2)},
	}

	where, _ = either.And(dto.Eq("", "c", 3)).GetWhereClause()
	assert.Equal(t, "((a = :a OR b = :b) AND c = :c)", where)
}

func TestFilterGroup_Empty(t *testing.T) {
	where, args := dto.Where().GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
