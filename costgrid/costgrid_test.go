package costgrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/costgrid"
)

//----------------------------------------------------------------------------//
// New
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or negative inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int64
		err  error
	}{
		{"EmptyRows", [][]int64{}, costgrid.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, costgrid.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, costgrid.ErrNonRectangular},
		{"Negative", [][]int64{{1, -2}, {3, 4}}, costgrid.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := costgrid.New(tc.grid)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, costgrid.ErrInvalidGrid, "every structural error wraps ErrInvalidGrid")
		})
	}
}

// TestNew_DeepCopy checks that mutating the input after New does not leak.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int64{{1, 2}, {3, 4}}
	g, err := costgrid.New(in)
	require.NoError(t, err)

	in[0][0] = 9
	assert.Equal(t, int64(1), g.Cost(0, 0))
}

func TestGrid_Accessors(t *testing.T) {
	g, err := costgrid.New([][]int64{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, int64(5), g.Cost(2, 1))
	assert.Equal(t, int64(1), g.Cost(1, 0))
	assert.Equal(t, costgrid.Cell{X: 0, Y: 0}, g.Start())
	assert.Equal(t, costgrid.Cell{X: 2, Y: 1}, g.Goal())
	assert.Equal(t, "(2,1)", g.Goal().String())

	for i := 0; i < g.Width()*g.Height(); i++ {
		x, y := g.Coordinate(i)
		assert.Equal(t, i, g.Index(x, y))
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := costgrid.New([][]int64{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse_Digits(t *testing.T) {
	g, err := costgrid.ParseString("241\r\n321\n\n")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, int64(2), g.Cost(0, 0))
	assert.Equal(t, int64(4), g.Cost(1, 0))
	assert.Equal(t, int64(1), g.Cost(2, 1))

	// rows wider than bufio's default 64 KiB token
	const wide = 70000
	g, err = costgrid.ParseString(strings.Repeat("1", wide) + "\n" + strings.Repeat("2", wide) + "\n")
	require.NoError(t, err)
	assert.Equal(t, wide, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, int64(2), g.Cost(wide-1, 1))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", costgrid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", costgrid.ErrEmptyGrid},
		{"Ragged", "123\n12\n", costgrid.ErrNonRectangular},
		{"BlankBetweenRows", "12\n\n34\n", costgrid.ErrNonRectangular},
		{"LeadingBlank", "\n12\n34\n", costgrid.ErrNonRectangular},
		{"LeadingCRLF", "\r\n12\r\n", costgrid.ErrNonRectangular},
		{"Letter", "12\n3x\n", costgrid.ErrBadDigit},
		{"Sign", "-1\n", costgrid.ErrBadDigit},
		{"Space", "1 2\n", costgrid.ErrBadDigit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costgrid.ParseString(tc.input)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, errors.Is(err, costgrid.ErrInvalidGrid))
		})
	}
}

func TestParse_BadDigitPosition(t *testing.T) {
	_, err := costgrid.ParseString("12\n3x\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2 column 2")
}

// TestParse_Idempotent parses the same text twice and checks the grids match,
// and that String round-trips through Parse.
func TestParse_Idempotent(t *testing.T) {
	const text = "2413432311323\n3215453535623\n3255245654254\n"
	a, err := costgrid.ParseString(text)
	require.NoError(t, err)
	b, err := costgrid.Parse(strings.NewReader(text))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, text, a.String())

	c, err := costgrid.ParseString(a.String())
	require.NoError(t, err)
	assert.True(t, a.Equal(c))
}

func TestGrid_Equal(t *testing.T) {
	a, _ := costgrid.New([][]int64{{1, 2}})
	b, _ := costgrid.New([][]int64{{1}, {2}})
	c, _ := costgrid.New([][]int64{{1, 3}})

	assert.False(t, a.Equal(b), "shape differs")
	assert.False(t, a.Equal(c), "cost differs")
	assert.False(t, a.Equal(nil))
	assert.True(t, (*costgrid.Grid)(nil).Equal(nil))
}

func TestGrid_StringWideCosts(t *testing.T) {
	g, err := costgrid.New([][]int64{{1, 10}, {100, 0}})
	require.NoError(t, err)
	assert.Equal(t, "1 10\n100 0\n", g.String())
}
