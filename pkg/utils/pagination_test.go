package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination_Setters(t *testing.T) {
	p := &Pagination{}
	require.NoError(t, p.SetSize(""))
	assert.Equal(t, defaultSize, p.GetSize())
	require.NoError(t, p.SetSize("25"))
	assert.Equal(t, 25, p.GetSize())
	assert.Error(t, p.SetSize("lots"))

	require.NoError(t, p.SetPage(""))
	assert.Equal(t, 0, p.GetPage())
	require.NoError(t, p.SetPage("3"))
	assert.Equal(t, 3, p.GetPage())
	assert.Error(t, p.SetPage("first"))
}

func TestPagination_GetOffset(t *testing.T) {
	p := &Pagination{Page: 0, Size: 10}
	assert.Equal(t, 0, p.GetOffset())

	p.Page = 3
	assert.Equal(t, 20, p.GetOffset())
}

func TestGetTotalPages(t *testing.T) {
	assert.Equal(t, 0, GetTotalPages(0, 10))
	assert.Equal(t, 1, GetTotalPages(10, 10))
	assert.Equal(t, 2, GetTotalPages(11, 10))
	assert.Equal(t, 3, GetTotalPages(25, 10))
}

func TestGetHasMore(t *testing.T) {
	// page 2 of 25 rows at size 10 still has rows 21-25 remaining
	assert.True(t, GetHasMore(2, 25, 10))
	assert.True(t, GetHasMore(1, 11, 10))
	assert.False(t, GetHasMore(2, 20, 10))
	assert.False(t, GetHasMore(3, 25, 10))
	assert.False(t, GetHasMore(1, 10, 10))
}
