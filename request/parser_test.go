package request_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonshearin/graphqueryd/internal/reqerr"
	"github.com/brandonshearin/graphqueryd/request"
)

type fakeConn struct {
	written strings.Builder
	closed  int
}

func (f *fakeConn) Write(p []byte) (int, error) { return f.written.Write(p) }
func (f *fakeConn) Close() error                { f.closed++; return nil }
func (f *fakeConn) RemoteAddr() string          { return "127.0.0.1:0" }

func parse(t *testing.T, input string) (*request.Request, error) {
	t.Helper()
	return request.Parse(bufio.NewReader(strings.NewReader(input)), &fakeConn{}, 100)
}

func TestParseExplicitModeBuildsGraph(t *testing.T) {
	req, err := parse(t, "EULER GRAPH 3 4\n0 1\n1 2\n2 3\n")
	require.NoError(t, err)
	assert.Equal(t, "EULER", req.Algorithm)
	assert.False(t, req.WantPrint)
	assert.Equal(t, 4, req.Graph.V())
	assert.Equal(t, 3, req.Graph.E())
}

func TestParseExplicitModeWithWeights(t *testing.T) {
	req, err := parse(t, "MST GRAPH 2 3\n0 1 5\n1 2 7\n")
	require.NoError(t, err)
	assert.Equal(t, float64(5), req.Graph.Weight(0, 1))
	assert.Equal(t, float64(7), req.Graph.Weight(1, 2))
}

func TestParsePFlag(t *testing.T) {
	req, err := parse(t, "MST GRAPH 1 2 -p\n0 1\n")
	require.NoError(t, err)
	assert.True(t, req.WantPrint)
}

func TestParseDuplicateEdgeStillConsumesLine(t *testing.T) {
	req, err := parse(t, "EULER GRAPH 2 3\n0 1\n0 1\n")
	require.NoError(t, err)
	assert.Equal(t, 1, req.Graph.E())
}

func TestParseRandomModeDeterministic(t *testing.T) {
	req1, err := parse(t, "MST 3 5 42\n")
	require.NoError(t, err)
	req2, err := parse(t, "MST 3 5 42\n")
	require.NoError(t, err)

	assert.Equal(t, req1.Graph.E(), req2.Graph.E())
	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			assert.Equal(t, req1.Graph.HasEdge(u, v), req2.Graph.HasEdge(u, v))
		}
	}
}

func TestParseUnknownAlgorithm(t *testing.T) {
	_, err := parse(t, "BOGUS 1 2 3\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrUsage))
	assert.Contains(t, reqerr.Line(err), "unknown ALGO")
}

func TestParseMalformedHeader(t *testing.T) {
	_, err := parse(t, "EULER\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrUsage))
}

func TestParseVertexCountOutOfRange(t *testing.T) {
	_, err := parse(t, "EULER 0 0 1\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrRange))
}

func TestParseEdgeCountExceedsMax(t *testing.T) {
	_, err := parse(t, "EULER 100 4 1\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrRange))
	assert.Contains(t, reqerr.Line(err), "E <= V*(V-1)/2")
}

func TestParseEdgeLineSelfLoopRejected(t *testing.T) {
	_, err := parse(t, "EULER GRAPH 1 3\n0 0\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrEdgeLine))
}

func TestParseEdgeLineOutOfRangeEndpoint(t *testing.T) {
	_, err := parse(t, "EULER GRAPH 1 3\n0 9\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrEdgeLine))
}

func TestParseEdgeLineNonPositiveWeight(t *testing.T) {
	_, err := parse(t, "MST GRAPH 1 3\n0 1 0\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrEdgeLine))
	assert.Contains(t, reqerr.Line(err), "weight must be positive")
}

func TestParseShortEdgeInput(t *testing.T) {
	_, err := parse(t, "EULER GRAPH 2 3\n0 1\n")
	require.Error(t, err)
	assert.True(t, reqerr.Is(err, reqerr.ErrEdgeLine))
}
