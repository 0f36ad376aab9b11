package signature

import "errors"

// Param errors
var (
	ErrParamEmptyName    = errors.New("parameter name cannot be empty")
	ErrOptionalRequired  = errors.New("required parameter cannot follow an optional parameter")
	ErrRestNotLast       = errors.New("rest parameter must be the last parameter")
	ErrRestOptional      = errors.New("rest parameter cannot also be optional")
	ErrVoidParameterType = errors.New("parameter type cannot be void")
)

// Param describes one positional parameter of a command.
type Param struct {
	Name     string  // Parameter name, used for display only
	Type     TypeRef // Declared semantic type
	Optional bool    // Caller may omit this and every later parameter
	Rest     bool    // Collects any remaining arguments; Type is the element type
	Doc      string  // Meaning of the parameter; required reading for opaque types
}

// sameShape reports whether p and o agree on type and arity flags.
// Names and docs are presentation and never count as a difference.
func (p Param) sameShape(o Param) bool {
	return p.Type == o.Type && p.Optional == o.Optional && p.Rest == o.Rest
}

func (p Param) label() string {
	switch {
	case p.Rest:
		return "..." + p.Name + ": " + p.Type.Name() + "[]"
	case p.Optional:
		return p.Name + "?: " + p.Type.Name()
	default:
		return p.Name + ": " + p.Type.Name()
	}
}
