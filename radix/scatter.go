package radix

// workspace is the double buffer the scatter passes run on. live indexes
// the buffer holding the most recent pass.
type workspace[K Unsigned] struct {
	bufs [2][]K
	live int
	// inPlace is set when bufs[1] is the caller's own slice.
	inPlace bool
}

// newWorkspace allocates the key buffers for data. When the keys are the
// values themselves the caller's slice serves as the second buffer.
func newWorkspace[T Number, K Unsigned](data []T, c codec[T, K]) *workspace[K] {
	n := len(data)
	w := &workspace[K]{}
	w.bufs[0] = make([]K, n)
	if view, ok := any(data).([]K); ok && !c.inverse {
		w.bufs[1] = view
		w.inPlace = true
	} else {
		w.bufs[1] = make([]K, n)
	}
	return w
}

// scatterFirst runs pass 0: it reads the caller's values, encodes them and
// places them by their least significant digit.
func scatterFirst[T Number, K Unsigned](src []T, dst []K, cur []int, c codec[T, K]) {
	mask := c.scheme.mask()
	for _, v := range src {
		k := c.encode(v)
		d := uint64(k) & mask
		cur[d]++
		dst[cur[d]] = k
	}
}

// scatter places src into dst by digit pos. Elements sharing a digit keep
// their relative order.
func scatter[K Unsigned](src, dst []K, cur []int, s Scheme, pos int) {
	shift := uint(pos * s.Radix)
	mask := s.mask()
	for _, k := range src {
		d := (uint64(k) >> shift) & mask
		cur[d]++
		dst[cur[d]] = k
	}
}

// run performs all digit passes, alternating between the two buffers.
func (w *workspace[K]) run(s Scheme, h *histograms) {
	for pos := 1; pos < s.Digits; pos++ {
		src, dst := w.bufs[w.live], w.bufs[1-w.live]
		scatter(src, dst, h.cursors(pos), s, pos)
		w.live = 1 - w.live
	}
}

// writeBack moves the sorted keys into data, decoding them on the way.
// It reports false when the result already sits in data.
func writeBack[T Number, K Unsigned](data []T, w *workspace[K], c codec[T, K]) bool {
	if w.inPlace {
		if w.live == 1 {
			return false
		}
		copy(w.bufs[1], w.bufs[0])
		return true
	}
	for i, k := range w.bufs[w.live] {
		data[i] = c.decode(k)
	}
	return true
}
