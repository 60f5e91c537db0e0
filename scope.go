package errorbag

import "fmt"

// Scope partitions the entries of a Bag into independent namespaces, for
// example one per form instance sharing the same field names.
//
// A Scope is either NoScope (the zero value) or a named scope created with
// Named. Lookups compare scopes exactly: an unscoped lookup never sees named
// entries and a named lookup never sees unscoped ones.
type Scope struct {
	name  string
	named bool
}

// NoScope is the scope of entries added without one.
var NoScope = Scope{}

// Named returns the scope identified by name. Named("") is a valid scope and
// is distinct from NoScope.
func Named(name string) Scope {
	return Scope{name: name, named: true}
}

// Name returns the scope identifier and whether the scope is named at all.
func (s Scope) Name() (string, bool) {
	return s.name, s.named
}

func (s Scope) IsNamed() bool {
	return s.named
}

func (s Scope) String() string {
	if !s.named {
		return "<none>"
	}
	return fmt.Sprintf("%q", s.name)
}
