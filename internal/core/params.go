package core

import (
	"strconv"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes enumerated or free-form string parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a method.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a method.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by methods that describe their tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// String renders the snapshot as "group: key=value ..." lines.
func (s ParameterSnapshot) String() string {
	var b strings.Builder
	for i, g := range s.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.Name)
		b.WriteByte(':')
		for _, p := range g.Params {
			b.WriteByte(' ')
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

// IntParam builds an integer parameter.
func IntParam(key, label string, v int, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, v float64, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64), Description: desc}
}

// BoolParam builds a boolean parameter.
func BoolParam(key, label string, v bool, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(v), Description: desc}
}

// StringParam builds a string parameter.
func StringParam(key, label, v, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: v, Description: desc}
}
