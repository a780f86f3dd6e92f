// Package layering merges configuration snapshots ordered from strongest to
// weakest. A field left at its zero value in a stronger layer is treated as
// unset and filled from the next weaker layer.
package layering

import "reflect"

// MergeLayers composes snapshots ordered from strongest to weakest, returning a
// new value that keeps explicit settings from stronger layers while filling any
// zero-valued fields from weaker ones.
func MergeLayers[T any](layers ...T) T {
	var zero T
	if len(layers) == 0 {
		return zero
	}

	merged := cloneValue(reflect.ValueOf(layers[len(layers)-1]))
	for i := len(layers) - 2; i >= 0; i-- {
		merged = mergeValue(reflect.ValueOf(layers[i]), merged)
	}

	if !merged.IsValid() {
		return zero
	}
	return merged.Interface().(T)
}

func mergeValue(strong, weak reflect.Value) reflect.Value {
	if !strong.IsValid() {
		return cloneValue(weak)
	}
	if !weak.IsValid() || weak.Type() != strong.Type() {
		return cloneValue(strong)
	}

	switch strong.Kind() {
	case reflect.Struct:
		result := reflect.New(strong.Type()).Elem()
		for i := 0; i < strong.NumField(); i++ {
			field := result.Field(i)
			if !field.CanSet() {
				continue
			}
			field.Set(mergeValue(strong.Field(i), weak.Field(i)))
		}
		return result
	case reflect.Pointer:
		if strong.IsNil() {
			return cloneValue(weak)
		}
		if weak.IsNil() {
			return cloneValue(strong)
		}
		result := reflect.New(strong.Type().Elem())
		result.Elem().Set(mergeValue(strong.Elem(), weak.Elem()))
		return result
	case reflect.Map:
		if strong.IsNil() {
			return cloneValue(weak)
		}
		result := reflect.MakeMapWithSize(strong.Type(), strong.Len()+weak.Len())
		iter := weak.MapRange()
		for iter.Next() {
			result.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		iter = strong.MapRange()
		for iter.Next() {
			result.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return result
	default:
		if strong.IsZero() {
			return cloneValue(weak)
		}
		return cloneValue(strong)
	}
}

func cloneValue(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		clone := reflect.New(v.Type().Elem())
		clone.Elem().Set(cloneValue(v.Elem()))
		return clone
	case reflect.Struct:
		clone := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := clone.Field(i)
			if !field.CanSet() {
				continue
			}
			field.Set(cloneValue(v.Field(i)))
		}
		return clone
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		clone := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			clone.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return clone
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		clone := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(clone, v)
		return clone
	default:
		clone := reflect.New(v.Type()).Elem()
		clone.Set(v)
		return clone
	}
}
