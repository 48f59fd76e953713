package engine

// resolvePlacement is C6: given the analyzed shape of the current
// syllable, choose which buffer cell (absolute index, not nucleus-
// relative) should carry a newly-applied tone mark. onsetLen is the
// number of cells consumed by the onset, used to translate the
// pattern-relative nucleus slot into an absolute buffer index.
func resolvePlacement(shape syllableShape, onsetLen int, afterQ bool, modern bool) int {
	hasFinal := shape.coda != ""
	slot := placementSlot(shape.pattern, hasFinal, afterQ, modern)
	return onsetLen + slot
}
