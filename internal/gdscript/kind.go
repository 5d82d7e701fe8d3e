package gdscript

// FunctionKind is the closed set of method classifications.
type FunctionKind int

const (
	KindMethod FunctionKind = iota + 1
	KindVirtual
	KindStatic
)

// String implements fmt.Stringer for logging.
func (k FunctionKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindVirtual:
		return "virtual"
	case KindStatic:
		return "static"
	}
	return "unknown"
}

// classifyFunction derives the kind from the method's provenance and tags.
// Static wins over virtual: a function delivered through the static list is
// static no matter what its tags claim.
func classifyFunction(isStatic, taggedVirtual bool) FunctionKind {
	switch {
	case isStatic:
		return KindStatic
	case taggedVirtual:
		return KindVirtual
	}
	return KindMethod
}
