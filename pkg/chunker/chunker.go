// Package chunker provides ordered partitioning of slices.
package chunker

// Partition splits items into consecutive chunks of at most size elements,
// preserving input order. The chunk index doubles as a batch number for
// attributing per-chunk results back to items. Chunks share backing storage
// with items. A size <= 0 yields a single chunk.
func Partition[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
