package radix

// histograms holds the write cursors of every digit position back to back,
// Buckets entries per position.
type histograms struct {
	scheme Scheme
	counts []int
}

// cursors returns the cursor array of digit position pos.
func (h *histograms) cursors(pos int) []int {
	b := h.scheme.Buckets
	return h.counts[pos*b : (pos+1)*b]
}

// buildHistograms counts every digit position of every element in a single
// pass and turns the counts into write cursors. If the input turns out to be
// non-decreasing it reports sorted and returns no histograms.
//
// Cursors start one below the first slot of their bucket: the scatter pass
// increments before it writes.
func buildHistograms[T Number, K Unsigned](data []T, c codec[T, K]) (*histograms, bool) {
	s := c.scheme
	h := &histograms{
		scheme: s,
		counts: make([]int, s.Digits*s.Buckets),
	}

	sorted := true
	prev := data[0]
	for _, v := range data {
		sorted = sorted && v >= prev
		prev = v

		key := uint64(c.encode(v))
		for pos := 0; pos < s.Digits; pos++ {
			h.counts[pos*s.Buckets+s.Digit(key, pos)]++
		}
	}

	if sorted {
		return nil, true
	}

	for pos := 0; pos < s.Digits; pos++ {
		cur := h.cursors(pos)
		next := -1
		for b, count := range cur {
			cur[b] = next
			next += count
		}
	}
	return h, false
}
