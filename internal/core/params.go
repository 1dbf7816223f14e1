package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable a simulation factory accepts through
// key=value overrides.
type Parameter struct {
	Key         string
	Type        ParamType
	Default     string
	Description string
}

// ParameterLister exposes the tunables a sim accepts so command-line tools
// can print them without hard-coding per-sim knowledge.
type ParameterLister interface {
	Parameters() []Parameter
}
