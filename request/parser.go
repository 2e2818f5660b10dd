package request

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/brandonshearin/graphqueryd/algo"
	"github.com/brandonshearin/graphqueryd/graph"
	"github.com/brandonshearin/graphqueryd/internal/reqerr"
)

// Parse reads one header line from r and, in explicit mode, the edge
// lines that follow, validating as it goes (§4.8). wmax bounds sampled
// weights in random mode. A non-nil error is always a reqerr sentinel
// (Usage/Range/EdgeLine) whose Line() is the literal "ERR ..." text the
// caller sends back before closing client; on success client stays open
// and travels with the Request to the sender stage, which closes it. The runtime
// retries EINTR on the underlying read itself, so TransientIO never
// surfaces here.
func Parse(r *bufio.Reader, client ConnectionHandle, wmax int) (*Request, error) {
	header, err := readLine(r)
	if err != nil {
		return nil, reqerr.Wrap(reqerr.ErrUsage, "ERR short input")
	}

	fields := strings.Fields(header)
	if len(fields) < 4 {
		return nil, reqerr.Wrap(reqerr.ErrUsage, "ERR malformed header")
	}

	algoName := fields[0]
	if _, ok := algo.Lookup(algoName); !ok {
		return nil, reqerr.Wrap(reqerr.ErrUsage, fmt.Sprintf("ERR unknown ALGO. got=%s", algoName))
	}

	explicit := fields[1] == "GRAPH"

	var eTok, vTok string
	var seed uint32
	var wantPrint bool
	if explicit {
		if len(fields) < 4 {
			return nil, reqerr.Wrap(reqerr.ErrUsage, "ERR malformed header")
		}
		eTok, vTok = fields[2], fields[3]
		wantPrint = hasFlag(fields[4:], "-p")
	} else {
		if len(fields) < 4 {
			return nil, reqerr.Wrap(reqerr.ErrUsage, "ERR malformed header")
		}
		eTok, vTok = fields[1], fields[2]
		seedTok := fields[3]
		s, perr := strconv.ParseUint(seedTok, 10, 32)
		if perr != nil {
			return nil, reqerr.Wrap(reqerr.ErrRange, "ERR invalid seed")
		}
		seed = uint32(s)
		wantPrint = hasFlag(fields[4:], "-p")
	}

	e, verr := strconv.Atoi(eTok)
	if verr != nil {
		return nil, reqerr.Wrap(reqerr.ErrUsage, "ERR malformed header")
	}
	v, verr := strconv.Atoi(vTok)
	if verr != nil {
		return nil, reqerr.Wrap(reqerr.ErrUsage, "ERR malformed header")
	}

	if v < 1 {
		return nil, reqerr.Wrap(reqerr.ErrRange, "ERR invalid: V >= 1")
	}
	maxE := v * (v - 1) / 2
	if e < 0 || e > maxE {
		return nil, reqerr.Wrap(reqerr.ErrRange, fmt.Sprintf("ERR invalid: E <= V*(V-1)/2 (max=%d)", maxE))
	}

	g, gerr := graph.New(v)
	if gerr != nil {
		return nil, reqerr.Wrap(reqerr.ErrRange, "ERR invalid: V >= 1")
	}

	if explicit {
		if err := readExplicitEdges(r, g, e); err != nil {
			return nil, err
		}
	} else {
		generateRandomGraph(g, e, seed, wmax)
	}

	return &Request{
		ID:        uuid.New(),
		Algorithm: algoName,
		WantPrint: wantPrint,
		Graph:     g,
		Client:    client,
	}, nil
}

func hasFlag(rest []string, flag string) bool {
	for _, f := range rest {
		if f == flag {
			return true
		}
	}
	return false
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readExplicitEdges reads exactly want lines regardless of how many end
// up inserted: duplicates are silently dropped but still consume one line
// of input, per §4.8. A malformed line, an out-of-range endpoint, a
// self-loop or a non-positive weight fails the whole request with an
// ErrEdgeLine error.
func readExplicitEdges(r *bufio.Reader, g *graph.Graph, want int) error {
	for i := 0; i < want; i++ {
		line, err := readLine(r)
		if err != nil {
			return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR short input")
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR edge endpoints")
		}

		u, uerr := strconv.Atoi(fields[0])
		vtx, verr := strconv.Atoi(fields[1])
		if uerr != nil || verr != nil {
			return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR edge endpoints")
		}

		weight := 1.0
		if len(fields) >= 3 {
			w, werr := strconv.ParseFloat(fields[2], 64)
			if werr != nil {
				return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR weight must be positive")
			}
			if w <= 0 {
				return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR weight must be positive")
			}
			weight = w
		}

		if u < 0 || u >= g.V() || vtx < 0 || vtx >= g.V() {
			return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR edge endpoints")
		}
		if u == vtx {
			return reqerr.Wrap(reqerr.ErrEdgeLine, "ERR edge endpoints")
		}

		g.AddEdge(u, vtx, weight) // bad endpoints/self-loops already rejected above; AddEdge no-ops on dupes
	}
	return nil
}

// generateRandomGraph samples edges with the reference LCG (§6) until e
// distinct edges are placed, silently retrying self-loops and
// duplicates. wmax bounds sampled weights to [1, wmax].
func generateRandomGraph(g *graph.Graph, e int, seed uint32, wmax int) {
	if wmax < 1 {
		wmax = 1
	}
	rng := newLCG(seed)
	v := g.V()
	if v < 2 {
		return
	}
	placed := 0
	for placed < e {
		u := rng.intn(v)
		w := rng.intn(v)
		weight := float64(rng.intn(wmax) + 1)
		if g.AddEdge(u, w, weight) {
			placed++
		}
	}
}
