package shared_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"venue/shared"
	"venue/shared/cache/mocks"
	"venue/shared/constant"
	"venue/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "one", input: "1", expected: boolPtr(true)},
		{name: "upper case FALSE", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		expected     int
	}{
		{name: "no data", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 5, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

type patch struct {
	Name      string  `db:"name"`
	Capacity  *int    `db:"capacity"`
	Notes     *string `db:"notes"`
	Untracked string
}

func TestTransformFields(t *testing.T) {
	fields := shared.TransformFields(patch{Name: "Hall", Capacity: intPtr(0), Untracked: "x"}, "staff-1")

	assert.Equal(t, "Hall", fields["name"])
	assert.Equal(t, intPtr(0), fields["capacity"])
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "Untracked")
	assert.Equal(t, "staff-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "abc"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "menu:item:gets", shared.BuildCacheKey("menu:item:gets"))
	assert.Equal(t, "rental:get:42", shared.BuildCacheKey("rental:get", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	byName := dto.FilterGroup{Filters: []any{dto.Filter{Field: "name", Value: "cake", Operator: dto.FilterOperatorLike}}}
	byOther := dto.FilterGroup{Filters: []any{dto.Filter{Field: "name", Value: "pie", Operator: dto.FilterOperatorLike}}}

	first := shared.BuildCacheKeyWithQuery("menu:item:gets", params, byName)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("menu:item:gets", params, byName))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("menu:item:gets", params, byOther))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("menu:item:gets", dto.QueryParams{Page: 2, Limit: 10}, byName))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "rental:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "rental:gets")

	redisCache.EXPECT().Clear(gomock.Any(), "rental:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "rental:count")
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func TestNullifyBlank(t *testing.T) {
	blank := " "
	city := "Edison"

	fields := shared.NullifyBlank(map[string]any{
		"gaam": &blank,
		"city": &city,
		"name": &blank,
	}, "gaam", "city")

	assert.Nil(t, fields["gaam"])
	assert.Equal(t, &city, fields["city"])
	assert.Equal(t, &blank, fields["name"])
}
