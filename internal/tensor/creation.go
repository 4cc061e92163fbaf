package tensor

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case bool:
		one = true
	}

	return Full[T, B](shape, one.(T), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive),
// stepping by one.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var dummy T
	switch any(dummy).(type) {
	case bool:
		panic("Arange does not support bool tensors")
	}

	n := arangeLength(start, end)
	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()

	value := start
	for i := range data {
		data[i] = value
		value = addOne(value)
	}
	return t
}

// arangeLength computes the number of elements in [start, end).
func arangeLength[T DType](start, end T) int {
	switch s := any(start).(type) {
	case float32:
		n := int(any(end).(float32) - s)
		return max(n, 0)
	case float64:
		n := int(any(end).(float64) - s)
		return max(n, 0)
	case int32:
		n := int(any(end).(int32) - s)
		return max(n, 0)
	case int64:
		n := int(any(end).(int64) - s)
		return max(n, 0)
	case uint8:
		e := any(end).(uint8)
		if e <= s {
			return 0
		}
		return int(e - s)
	default:
		panic("unsupported type")
	}
}

// addOne increments a numeric value by one.
func addOne[T DType](v T) T {
	switch x := any(v).(type) {
	case float32:
		return any(x + 1).(T)
	case float64:
		return any(x + 1).(T)
	case int32:
		return any(x + 1).(T)
	case int64:
		return any(x + 1).(T)
	case uint8:
		return any(x + 1).(T)
	default:
		panic("unsupported type")
	}
}
