package rental

// CheckConflicts returns the blocks whose date ranges overlap the
// requested range. Both the read-only availability check and the locked
// re-check inside booking creation go through this filter.
func CheckConflicts(blocks []*AvailabilityBlock, requested DateRange) []*AvailabilityBlock {
	var conflicts []*AvailabilityBlock
	for _, b := range blocks {
		if b.Dates().Overlaps(requested) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
