package ir

import "strconv"

// NodeID identifies a node within a Graph. It is also used to name region
// roots: the Children of a NodeID returned by CaseRegions, LoopBody, or
// CalleeBody are the contents of that nested region.
type NodeID string

// PortRef identifies one port of one node: an input port when used as a
// consumer key, an output port when used as a producer key.
type PortRef struct {
	Node NodeID
	Port int
}

// String renders p as "node[port]" for diagnostics.
func (p PortRef) String() string {
	return string(p.Node) + "[" + strconv.Itoa(p.Port) + "]"
}

// OpKind classifies a node's operation.
type OpKind int

// The closed set of operation categories a Graph node may report.
const (
	OpInput OpKind = iota
	OpOutput
	OpConditional
	OpTailLoop
	OpCall
	OpExtension // ExtName carries the gate/opaque-op name
)

// String renders k for diagnostics.
func (k OpKind) String() string {
	switch k {
	case OpInput:
		return "Input"
	case OpOutput:
		return "Output"
	case OpConditional:
		return "Conditional"
	case OpTailLoop:
		return "TailLoop"
	case OpCall:
		return "Call"
	case OpExtension:
		return "Extension"
	default:
		return "Unknown"
	}
}

// OpType is a node's operation classification. ExtName is meaningful only
// when Kind == OpExtension, and names either a recognized gate (see the
// Gate* constants) or an opaque extension operation.
type OpType struct {
	Kind    OpKind
	ExtName string
}

// PortSpec describes one port of a node: its index and whether it carries a
// qubit value (non-qubit ports, e.g. classical bits or conditional
// discriminators, are reported but not threaded through the tableau).
type PortSpec struct {
	Port  int
	Qubit bool
}

// FunctionOpacity selects how a Call node's callee is summarized.
type FunctionOpacity int

const (
	// Opaque treats the call as a barrier: no relation between its inputs
	// and outputs is recorded.
	Opaque FunctionOpacity = iota
	// Boundary analyzes the callee once and composes only its input/output
	// boundary relations into the caller.
	Boundary
	// Inline analyzes the callee and composes its full internal relations,
	// so later passes can correlate internal callee gates with the caller.
	Inline
)

// String renders o for diagnostics.
func (o FunctionOpacity) String() string {
	switch o {
	case Opaque:
		return "Opaque"
	case Boundary:
		return "Boundary"
	case Inline:
		return "Inline"
	default:
		return "Unknown"
	}
}

// Recognized extension operation names, matched case-sensitively and
// exactly against OpType.ExtName. Any other ExtName is treated as opaque.
const (
	GateH           = "H"
	GateS           = "S"
	GateSdg         = "Sdg"
	GateV           = "V"
	GateVdg         = "Vdg"
	GateX           = "X"
	GateY           = "Y"
	GateZ           = "Z"
	GateCX          = "CX"
	GateCY          = "CY"
	GateCZ          = "CZ"
	GateT           = "T"
	GateTdg         = "Tdg"
	GateRz          = "Rz"
	GateRx          = "Rx"
	GateRy          = "Ry"
	GateCRz         = "CRz"
	GateToffoli     = "Toffoli"
	GateMeasure     = "Measure"
	GateMeasureFree = "MeasureFree"
	GateQAlloc      = "QAlloc"
	GateQFree       = "QFree"
	GateReset       = "Reset"
)
