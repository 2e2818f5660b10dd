// Package algo implements the five graph algorithms exposed by the server
// (Euler circuit, MST, maximum clique, clique counting, Hamiltonian
// cycle) and the strategy registry (C4) that dispatches a request's
// algorithm name to one of them.
package algo

import "github.com/brandonshearin/graphqueryd/graph"

// Emitter is a line-oriented text sink: each call appends one line (with
// no trailing newline of its own — the caller joins lines and terminates
// the response, per §6) to the response body being assembled for a
// connection. It collapses the spec's EmitFn+void* pair into a single
// function value, the same adapter-function idiom the teacher corpus
// uses for ProcessorFunc/RelayerFunc.
type Emitter func(line string)

// Capability is the uniform run(graph, emit) shape every registered
// algorithm exposes (§4.7).
type Capability func(g *graph.Graph, emit Emitter)

var registry = map[string]Capability{
	"EULER":      runEuler,
	"MST":        runMST,
	"MAXCLIQUE":  runMaxClique,
	"COUNTCLQ3P": runCountCliques,
	"HAMILTON":   runHamilton,
}

// Lookup returns the Capability registered under name, or false if name is
// not one of the five known algorithms ("unknown algorithm", §4.7).
func Lookup(name string) (Capability, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the known algorithm names, in no particular order, so the
// server can create one stage per algorithm.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

func runEuler(g *graph.Graph, emit Emitter) {
	res := EulerCircuit(g)
	if res.Found() {
		emit("Euler circuit exists. Sequence of vertices:")
		emit(joinArrow(res.Circuit))
		return
	}
	emit("No Euler circuit: " + res.Reason + ".")
}

func runMST(g *graph.Graph, emit Emitter) {
	res := MSTWeightPrim(g)
	if !res.Connected {
		emit("MST: graph is not connected (no spanning tree)")
		return
	}
	emit("MST total weight: " + formatWeight(res.TotalWeight))
}

func runMaxClique(g *graph.Graph, emit Emitter) {
	res := MaxClique(g)
	emit("Max clique size = " + itoa(res.Size()))
	if res.Size() > 0 {
		emit("Vertices: " + joinSpace(res.Members))
	}
}

func runCountCliques(g *graph.Graph, emit Emitter) {
	n := CountCliques3Plus(g)
	emit("Number of cliques (size >= 3): " + itoa(n))
}

func runHamilton(g *graph.Graph, emit Emitter) {
	res := HamiltonCycle(g)
	if res.Found() {
		emit("Hamiltonian cycle found:")
		emit(joinArrow(res.Cycle))
		return
	}
	emit("No Hamiltonian cycle.")
}
