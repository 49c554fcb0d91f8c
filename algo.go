package ffloat

// Sum adds xs in order. It returns zero for an empty slice.
func Sum[S Alone[S]](xs []S) S {
	var z S
	acc := z.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// MinOf returns the smallest element of xs, and false if xs is empty.
func MinOf[S Alone[S]](xs []S) (out S, ok bool) {
	if len(xs) == 0 {
		return out, false
	}
	out = xs[0]
	for _, x := range xs[1:] {
		out = out.Min(x)
	}
	return out, true
}

// MaxOf returns the largest element of xs, and false if xs is empty.
func MaxOf[S Alone[S]](xs []S) (out S, ok bool) {
	if len(xs) == 0 {
		return out, false
	}
	out = xs[0]
	for _, x := range xs[1:] {
		out = out.Max(x)
	}
	return out, true
}
