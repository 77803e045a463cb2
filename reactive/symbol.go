package reactive

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Symbol is a unique property key that never collides with a string key.
type Symbol struct {
	desc   string
	global bool
}

func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

func (s *Symbol) Description() string { return s.desc }

func (s *Symbol) String() string { return "Symbol(" + s.desc + ")" }

var (
	symbolsMu sync.Mutex
	// global registry, bucketed by the hash of the description
	symbols = map[uint64][]*Symbol{}
)

// SymbolFor returns the process-wide symbol registered under desc, creating
// it on first use.
func SymbolFor(desc string) *Symbol {
	h := xxhash.Sum64String(desc)

	symbolsMu.Lock()
	defer symbolsMu.Unlock()
	for _, s := range symbols[h] {
		if s.desc == desc {
			return s
		}
	}
	s := &Symbol{desc: desc, global: true}
	symbols[h] = append(symbols[h], s)
	return s
}

// Well-known symbols. Reads of these are structural and never tracked.
var (
	SymbolIterator      = NewSymbol("Symbol.iterator")
	SymbolAsyncIterator = NewSymbol("Symbol.asyncIterator")
	SymbolHasInstance   = NewSymbol("Symbol.hasInstance")
	SymbolToPrimitive   = NewSymbol("Symbol.toPrimitive")
	SymbolToStringTag   = NewSymbol("Symbol.toStringTag")
	SymbolUnscopables   = NewSymbol("Symbol.unscopables")
	SymbolSpecies       = NewSymbol("Symbol.species")

	builtInSymbols = mapset.NewSet(
		SymbolIterator,
		SymbolAsyncIterator,
		SymbolHasInstance,
		SymbolToPrimitive,
		SymbolToStringTag,
		SymbolUnscopables,
		SymbolSpecies,
	)
)

// Sentinel keys for iteration dependencies.
var (
	IterateKey       = NewSymbol("iterate")
	MapKeyIterateKey = NewSymbol("Map key iterate")
)

// Reserved keys.
const (
	FlagSkip       = "__v_skip"
	FlagIsReactive = "__v_isReactive"
	FlagIsReadonly = "__v_isReadonly"
	FlagRaw        = "__v_raw"
	FlagIsRef      = "__v_isRef"

	LengthKey   = "length"
	RefValueKey = "value"

	protoKey = "__proto__"
)

func isBuiltInSymbol(key any) bool {
	s, ok := key.(*Symbol)
	return ok && builtInSymbols.Contains(s)
}

// keys whose reads are structurally invariant and not worth a dependency
func isNonTrackableKey(key any) bool {
	if isBuiltInSymbol(key) {
		return true
	}
	return key == protoKey || key == FlagIsRef
}
