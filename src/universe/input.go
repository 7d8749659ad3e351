package universe

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

var (
	errPairLength = errors.New("expected exactly two components")
	errNotNumber  = errors.New("component is not a number")
	errNotFinite  = errors.New("component is not finite")
	errFraction   = errors.New("component is not an integer")
	errRange      = errors.New("component is out of the int range")
)

//the int range as floats, both are exact powers of two
var (
	minIntFloat = float64(math.MinInt)
	maxIntFloat = -minIntFloat
)

//ParseCoordinate converts a host value to a Coordinate
//accepted forms: Coordinate, *Coordinate, [2]T, []T of length 2 and []any of length 2,
//where T is any integer or float type, json.Number or any holding one of them
func ParseCoordinate(v any) (Coordinate, error) {
	switch p := v.(type) {
	case Coordinate:
		return p, nil
	case *Coordinate:
		if p == nil {
			return Coordinate{}, errNotNumber
		}
		return *p, nil
	case [2]int:
		return Coordinate{p[0], p[1]}, nil
	case [2]int64:
		return pair(p[0], p[1])
	case [2]float64:
		return pair(p[0], p[1])
	case []int:
		return pairSlice(p)
	case []float64:
		return pairSlice(p)
	case []any:
		return pairSlice(p)
	}
	return reflectPair(v)
}

//reflectPair accepts the rest of the arrays and slices, their components are checked by toInt
func reflectPair(v any) (Coordinate, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if rv.Len() != 2 {
			return Coordinate{}, errPairLength
		}
		return pair(rv.Index(0).Interface(), rv.Index(1).Interface())
	}
	return Coordinate{}, fmt.Errorf("unsupported type %T", v)
}

func pairSlice[T any](s []T) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, errPairLength
	}
	return pair(s[0], s[1])
}

func pair(x any, y any) (Coordinate, error) {
	cx, err := toInt(x)
	if err != nil {
		return Coordinate{}, fmt.Errorf("x: %w", err)
	}
	cy, err := toInt(y)
	if err != nil {
		return Coordinate{}, fmt.Errorf("y: %w", err)
	}
	return Coordinate{cx, cy}, nil
}

//toInt converts a numeric component, checking it is an integer inside the int range
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if int64(int(n)) != n {
			return 0, errRange
		}
		return int(n), nil
	case uint:
		return fromUint(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return fromUint(uint64(n))
	case uint64:
		return fromUint(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, strconv.IntSize); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errNotNumber
		}
		return fromFloat(f)
	}
	return 0, errNotNumber
}

func fromUint(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, errRange
	}
	return int(n), nil
}

func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	if f != math.Trunc(f) {
		return 0, errFraction
	}
	if f < minIntFloat || f >= maxIntFloat {
		return 0, errRange
	}
	return int(f), nil
}
