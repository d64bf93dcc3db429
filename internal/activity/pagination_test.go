package activity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := numbers(250)

	page, p, err := Paginate(items, 3, 100)
	require.NoError(t, err)
	assert.Equal(t, items[200:250], page)
	assert.Equal(t, Pagination{Page: 3, Limit: 100, Total: 250, TotalPages: 3}, p)

	page, _, err = Paginate(items, 1, 100)
	require.NoError(t, err)
	assert.Len(t, page, 100)
	assert.Equal(t, 0, page[0])
}

func TestPaginatePastEnd(t *testing.T) {
	page, p, err := Paginate(numbers(10), 5, 10)
	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Empty(t, page)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginateEmpty(t *testing.T) {
	page, p, err := Paginate([]int{}, 1, 100)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
}

func TestPaginateInvalid(t *testing.T) {
	_, _, err := Paginate(numbers(3), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, _, err = Paginate(numbers(3), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, _, err = Paginate(numbers(3), 1, -5)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestPaginateHugeLimit(t *testing.T) {
	page, p, err := Paginate([]int{1, 2}, 1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, Pagination{Page: 1, Limit: math.MaxInt, Total: 2, TotalPages: 1}, p)

	page, p, err = Paginate([]int{1, 2}, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 1, p.TotalPages)
}
