// Package gdscript converts the JSON representation of GDScript classes, as
// dumped by the reference collector running inside the engine, into a typed
// in-memory model ready for rendering.
package gdscript

import (
	"strings"
)

// builtinVirtualCallbacks lists the engine lifecycle callbacks that are never
// documented, regardless of any metadata on the method.
var builtinVirtualCallbacks = map[string]struct{}{
	"_process":                   {},
	"_physics_process":           {},
	"_input":                     {},
	"_unhandled_input":           {},
	"_gui_input":                 {},
	"_draw":                      {},
	"_get_configuration_warning": {},
	"_ready":                     {},
	"_enter_tree":                {},
	"_exit_tree":                 {},
	"_get":                       {},
	"_get_property_list":         {},
	"_notification":              {},
	"_set":                       {},
	"_to_string":                 {},
	"_clips_input":               {},
	"_get_minimum_size":          {},
	"_make_custom_tooltip":       {},
}

// typeConstructor is the GDScript constructor name. A bare constructor with no
// arguments carries no information worth documenting.
const typeConstructor = "_init"

// TagVirtual marks a method intended to be overridden.
const TagVirtual = "virtual"

// TagAbstract marks a class that is not meant to be instantiated directly.
const TagAbstract = "abstract"

// ProjectInfo is the header block of a class reference dump.
type ProjectInfo struct {
	Name        string
	Description string
	Version     string
}

// Argument is one declared function parameter.
type Argument struct {
	Name string
	Type string
}

// Signal is a declared signal with its argument names.
type Signal struct {
	Signature   string
	Name        string
	Description string
	Arguments   []string
}

// Enumeration represents an enum with its constants.
type Enumeration struct {
	Signature   string
	Name        string
	Description string
	Values      map[string]any
}

// Member represents a property or member variable.
type Member struct {
	Signature    string
	Name         string
	Description  string
	Type         string
	DefaultValue string
	IsExported   bool
	Setter       string
	Getter       string
	Tags         []string
}

// Summarize returns the member's overview table row.
func (m Member) Summarize() []string {
	return []string{m.Type, m.Name}
}

// Function is one documented method, classified by kind.
type Function struct {
	Signature   string
	Kind        FunctionKind
	Name        string
	Description string
	ReturnType  string
	Arguments   []Argument
	RPCMode     int
	Tags        []string
}

// Summarize returns the function's overview table row.
func (f Function) Summarize() []string {
	return []string{f.ReturnType, f.Signature}
}

// Class is the typed model of one GDScript class.
type Class struct {
	Name        string
	Extends     []string
	Description string
	Path        string
	Functions   []Function
	Members     []Member
	Signals     []Signal
	Enums       []Enumeration
	Tags        []string
	Category    string
}

// ExtendsAsString renders the parent chain, innermost parent first.
func (c Class) ExtendsAsString() string {
	return strings.Join(c.Extends, " < ")
}

// HasTag reports whether the class description declared the given tag.
func (c Class) HasTag(tag string) bool {
	return hasTag(c.Tags, tag)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
