package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IotA-asce/TSP-visualization/geom"
)

func TestParsePoints_BareArray(t *testing.T) {
	pts, err := parsePoints([]byte(`[[0, 0], [1.5, -2]]`))
	require.NoError(t, err)
	require.Equal(t, []geom.Vec{geom.V(0, 0), geom.V(1.5, -2)}, pts)
}

func TestParsePoints_WrappedObject(t *testing.T) {
	pts, err := parsePoints([]byte(`{"points": [[3, 4], [5, 6]]}`))
	require.NoError(t, err)
	require.Equal(t, []geom.Vec{geom.V(3, 4), geom.V(5, 6)}, pts)
}

func TestParsePoints_RejectsBadShapes(t *testing.T) {
	_, err := parsePoints([]byte(`[[1, 2, 3]]`))
	require.Error(t, err)

	_, err = parsePoints([]byte(`{"points": [[1]]}`))
	require.Error(t, err)

	_, err = parsePoints([]byte(`"not points"`))
	require.Error(t, err)

	_, err = parsePoints([]byte(`{invalid json`))
	require.Error(t, err)
}

func TestParsePoints_EmptyInputs(t *testing.T) {
	pts, err := parsePoints([]byte(`[]`))
	require.NoError(t, err)
	require.Empty(t, pts)

	pts, err = parsePoints([]byte(`{"points": []}`))
	require.NoError(t, err)
	require.Empty(t, pts)
}
