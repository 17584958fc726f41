package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venue/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq",
			filter:    dto.Eq("rental_items", "active", true),
			wantWhere: "rental_items.active = :active",
			wantArgs:  map[string]any{"active": true},
		},
		{
			name:      "not eq without table",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "CANCELLED"},
			wantWhere: "status <> :status",
			wantArgs:  map[string]any{"status": "CANCELLED"},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Like("bookings", "customer_name", "50%_off"),
			wantWhere: "bookings.customer_name ILIKE :customer_name",
			wantArgs:  map[string]any{"customer_name": `%50\%\_off%`},
		},
		{
			name:      "in binds every value",
			filter:    dto.In("menu_items", "id", []string{"a", "b"}),
			wantWhere: "menu_items.id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "in with empty set",
			filter:    dto.In("menu_items", "id", []string{}),
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with scalar",
			filter:    dto.Filter{Field: "id", Operator: dto.FilterOperatorIn, Value: "a"},
			wantWhere: "id = :id",
			wantArgs:  map[string]any{"id": "a"},
		},
		{
			name:      "gt",
			filter:    dto.Gt("events", "end_at", "2025-06-01"),
			wantWhere: "events.end_at > :end_at",
			wantArgs:  map[string]any{"end_at": "2025-06-01"},
		},
		{
			name:      "lt with arg name",
			filter:    dto.Filter{Table: "events", Field: "start_at", ArgName: "window_end", Operator: dto.FilterOperatorLt, Value: "2025-07-01"},
			wantWhere: "events.start_at < :window_end",
			wantArgs:  map[string]any{"window_end": "2025-07-01"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Table: "bookings", Field: "menu_template_id", Operator: dto.FilterOperatorIsNull},
			wantWhere: "bookings.menu_template_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Operator: "between"},
			wantWhere: "",
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

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("nested or inside and", func(t *testing.T) {
		name := dto.Like("bookings", "customer_name", "ann")
		name.ArgName = "q_name"

		status := dto.Like("bookings", "status", "ann")
		status.ArgName = "q_status"

		group := dto.And(dto.Eq("bookings", "id", "b-1"), dto.Or(name, status))

		where, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.id = :id AND (bookings.customer_name ILIKE :q_name OR bookings.status ILIKE :q_status))", where)
		assert.Len(t, args, 3)
	})

	t.Run("missing operator joins with and", func(t *testing.T) {
		group := dto.FilterGroup{}
		group.Add(dto.Eq("", "a", 1), dto.Eq("", "b", 2))

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(a = :a AND b = :b)", where)
	})

	t.Run("skips empty clauses and foreign values", func(t *testing.T) {
		group := dto.And(dto.Filter{Field: "x", Operator: "unknown"}, "not a filter", dto.Eq("", "a", 1))

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(a = :a)", where)
	})
}
