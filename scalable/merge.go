package scalable

// Merge appends an independent copy of every layer of other, oldest first,
// and adds other's count to f's. It returns f.
//
// No compatibility check is made: merged layers keep the capacity, hash count
// and error rate they were created with. The result answers Include for
// everything added to either filter, but the error rate bound of f's Config no
// longer applies to the merged layer set as a whole.
//
// other is not modified, and later changes to either filter do not affect the
// other. Merging a filter into itself doubles its layers.
func (f *Filter) Merge(other *Filter) *Filter {
	if other == nil {
		return f
	}
	// Snapshot before appending, other may be f.
	src := other.layers
	count := other.count
	for _, l := range src {
		f.layers = append(f.layers, l.Clone())
	}
	f.count += count

	f.debugf("merge: filter=%s, from=%s, layers=%d, added=%d, count=%d",
		f.opts.id, other.opts.id, len(f.layers), len(src), f.count)
	return f
}
