package reactive

// OpType names the kind of access reported to Track and Trigger.
type OpType uint8

const (
	OpGet OpType = iota
	OpHas
	OpIterate

	OpSet
	OpAdd
	OpDelete
	OpClear
)

func (op OpType) String() string {
	switch op {
	case OpGet:
		return "get"
	case OpHas:
		return "has"
	case OpIterate:
		return "iterate"
	case OpSet:
		return "set"
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Kind classifies raw targets. Wrappers report the kind of what they wrap.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindMap
	KindSet
	KindWeakMap
	KindWeakSet
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	case KindWeakMap:
		return "WeakMap"
	case KindWeakSet:
		return "WeakSet"
	default:
		return "Invalid"
	}
}

func (k Kind) isCollection() bool {
	return k >= KindMap
}

func (k Kind) isMapLike() bool {
	return k == KindMap || k == KindWeakMap
}
