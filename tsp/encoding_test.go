package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permqp/qp"
	"github.com/katalvlaran/permqp/tsp"
)

func TestEncoding_Bijection(t *testing.T) {
	for n := 1; n <= 6; n++ {
		enc := tsp.NewEncoding(n)
		require.Equal(t, n, enc.NumCities())
		require.Equal(t, n*n, enc.Size())

		seen := make(map[qp.VarID]bool, enc.Size())
		for city := 0; city < n; city++ {
			for stop := 0; stop < n; stop++ {
				id := enc.Var(city, stop)
				require.True(t, enc.Valid(city, stop))
				require.GreaterOrEqual(t, int(id), 0)
				require.Less(t, int(id), enc.Size())
				require.False(t, seen[id], "handle %d reused", id)
				seen[id] = true

				c, s := enc.Coords(id)
				require.Equal(t, city, c)
				require.Equal(t, stop, s)
			}
		}
	}
}

func TestEncoding_NextAndValid(t *testing.T) {
	enc := tsp.NewEncoding(4)
	require.Equal(t, 1, enc.Next(0))
	require.Equal(t, 0, enc.Next(3))
	require.False(t, enc.Valid(4, 0))
	require.False(t, enc.Valid(0, -1))

	require.Equal(t, 0, tsp.NewEncoding(1).Next(0))
}

func TestEncoding_Assignment(t *testing.T) {
	enc := tsp.NewEncoding(3)
	x, err := enc.Assignment([]int{2, 0, 1})
	require.NoError(t, err)
	require.Len(t, x, 9)

	var ones []qp.VarID
	for id, v := range x {
		if v {
			ones = append(ones, qp.VarID(id))
		}
	}
	// (city 2, stop 0), (city 0, stop 1), (city 1, stop 2)
	require.Equal(t, []qp.VarID{1, 5, 6}, ones)

	_, err = enc.Assignment([]int{0, 1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
