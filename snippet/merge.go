package snippet

// mergeClusters concatenates consecutive clusters until the merged run spans at least windowSize
// runes. Whatever is left over at the end is emitted as is, even if it is shorter.
func mergeClusters(clusters [][]tag, windowSize int) [][]tag {
	var (
		merged  [][]tag
		pending []tag
	)
	for _, cluster := range clusters {
		if len(cluster) == 0 {
			continue
		}
		pending = append(pending, cluster...)
		if pending[len(pending)-1].loc-pending[0].loc >= windowSize {
			merged = append(merged, pending)
			pending = nil
		}
	}
	if len(pending) > 0 {
		merged = append(merged, pending)
	}
	return merged
}
