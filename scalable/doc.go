// Package scalable implements a scalable Bloom filter: a growing sequence of
// bloom.Layer values that together answer "definitely absent" or "possibly
// present" for a stream of elements whose size is not known in advance.
//
// When the newest layer reaches its capacity a new layer is appended. The new
// layer's capacity is the previous capacity times GrowthFactor, and its error
// budget is LayerErrorRate: the filter's error rate times (1-r) r^i for layer
// i and tightening r. The budgets form a geometric series bounded by the
// configured error rate, however many layers are added.
//
//	f, err := scalable.New(scalable.Config{ErrorRate: 0.01})
//	if err != nil {
//		return err
//	}
//	if err := f.AddString("alice@example.com"); err != nil {
//		return err
//	}
//	f.IncludeString("alice@example.com") // true
//	f.IncludeString("bob@example.com")   // false, with high probability
//
// Elements can not be removed. Filters are purely in memory.
package scalable
