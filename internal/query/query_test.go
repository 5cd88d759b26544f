package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type title struct {
	Name string
	Pos  int
}

func names(items []title) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilterByText(t *testing.T) {
	movies := []title{{Name: "Dune"}, {Name: "Arrival"}, {Name: "Blade Runner"}}

	t.Run("short terms do not filter", func(t *testing.T) {
		assert.Len(t, FilterByText(movies, "", func(m title) string { return m.Name }), 3)
		assert.Len(t, FilterByText(movies, "d", func(m title) string { return m.Name }), 3)
	})

	t.Run("term length is runes, not bytes", func(t *testing.T) {
		accented := []title{{Name: "Dune"}, {Name: "Arrival"}, {Name: "Éternel"}}

		// One rune is noise even when it spans two bytes.
		got := FilterByText(accented, "é", func(m title) string { return m.Name })
		assert.Len(t, got, 3)

		got = FilterByText(accented, "ét", func(m title) string { return m.Name })
		assert.Equal(t, []string{"Éternel"}, names(got))
	})

	t.Run("two characters start filtering", func(t *testing.T) {
		got := FilterByText(movies, "du", func(m title) string { return m.Name })
		assert.Equal(t, []string{"Dune"}, names(got))
	})

	t.Run("case insensitive substring", func(t *testing.T) {
		got := FilterByText(movies, "RUNNER", func(m title) string { return m.Name })
		assert.Equal(t, []string{"Blade Runner"}, names(got))
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := FilterByText(movies, "zz", func(m title) string { return m.Name })
		assert.Empty(t, got)
	})
}

func TestSortBy(t *testing.T) {
	byName := func(a, b title) bool { return a.Name < b.Name }

	t.Run("input is not mutated", func(t *testing.T) {
		movies := []title{{Name: "Dune"}, {Name: "Arrival"}}
		_ = SortBy(movies, byName)
		assert.Equal(t, "Dune", movies[0].Name)
	})

	t.Run("ties keep prior relative order", func(t *testing.T) {
		movies := []title{{Name: "Dune", Pos: 1}, {Name: "Dune", Pos: 2}, {Name: "Arrival", Pos: 3}}
		sorted := SortBy(movies, byName)
		require.Len(t, sorted, 3)
		assert.Equal(t, 3, sorted[0].Pos)
		assert.Equal(t, 1, sorted[1].Pos)
		assert.Equal(t, 2, sorted[2].Pos)
	})

	t.Run("re-sorting sorted input is a no-op", func(t *testing.T) {
		movies := []title{{Name: "Arrival"}, {Name: "Blade Runner"}, {Name: "Dune"}}
		once := SortBy(movies, byName)
		twice := SortBy(once, byName)
		assert.Equal(t, once, twice)
	})
}

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 95)
	for i := 1; i <= 95; i++ {
		items = append(items, i)
	}

	t.Run("middle page", func(t *testing.T) {
		page := Paginate(items, 10, 3)
		assert.Equal(t, 3, page.Number)
		assert.Equal(t, 10, page.TotalPages)
		assert.Equal(t, 95, page.TotalItems)
		require.Len(t, page.Items, 10)
		assert.Equal(t, 21, page.Items[0])
		assert.Equal(t, 30, page.Items[9])
	})

	t.Run("last page is short", func(t *testing.T) {
		page := Paginate(items, 10, 10)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, 95, page.Items[4])
	})

	t.Run("past the end clamps to last page", func(t *testing.T) {
		page := Paginate(items, 10, 99)
		assert.Equal(t, 10, page.Number)
		assert.Len(t, page.Items, 5)
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		page := Paginate(items, 10, 0)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.Items[0])
	})

	t.Run("empty collection", func(t *testing.T) {
		page := Paginate([]int{}, 10, 1)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
		assert.Empty(t, page.Window)
	})
}

func TestPageWindow(t *testing.T) {
	t.Run("few pages show everything, no ellipses", func(t *testing.T) {
		page := Paginate(make([]int, 30), 10, 2)
		assert.Equal(t, []int{1, 2, 3}, page.Window)
		assert.False(t, page.LeadingEllipsis)
		assert.False(t, page.TrailingEllipsis)
	})

	t.Run("early page pins the window to the left", func(t *testing.T) {
		page := Paginate(make([]int, 200), 10, 2)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, page.Window)
		assert.False(t, page.LeadingEllipsis)
		assert.True(t, page.TrailingEllipsis)
	})

	t.Run("middle page centers the window", func(t *testing.T) {
		page := Paginate(make([]int, 200), 10, 12)
		assert.Equal(t, []int{7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, page.Window)
		assert.True(t, page.LeadingEllipsis)
		assert.True(t, page.TrailingEllipsis)
	})

	t.Run("late page pins the window to the right", func(t *testing.T) {
		page := Paginate(make([]int, 200), 10, 20)
		assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, page.Window)
		assert.True(t, page.LeadingEllipsis)
		assert.False(t, page.TrailingEllipsis)
	})
}
