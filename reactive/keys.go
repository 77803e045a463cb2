package reactive

import (
	"fmt"
	"math"
	"strconv"
)

// normalizeKey maps a caller supplied key to the canonical form used by
// storage, tracking and triggering: ints on arrays, strings on objects.
func normalizeKey(kind Kind, key any) any {
	switch k := key.(type) {
	case string:
		if kind == KindArray {
			if i, ok := parseIndex(k); ok {
				return i
			}
		}
		return k
	case *Symbol:
		return k
	case int:
		if kind == KindArray {
			return k
		}
		return strconv.Itoa(k)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if i, ok := toInt(k); ok {
			return normalizeKey(kind, i)
		}
	}
	return normalizeKey(kind, fmt.Sprint(key))
}

func parseIndex(s string) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || strconv.Itoa(i) != s {
		return 0, false
	}
	return i, true
}

func isIntegerKey(key any) (int, bool) {
	i, ok := key.(int)
	return i, ok && i >= 0
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case float32:
		return toInt(float64(n))
	}
	return 0, false
}

// toLength converts v to a valid array length.
func toLength(v any) (int, bool) {
	n, ok := toInt(v)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}
