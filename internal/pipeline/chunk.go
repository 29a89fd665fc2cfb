// internal/pipeline/chunk.go
package pipeline

// ChunksPerWorker is the target number of chunks each worker sees. More
// chunks smooth out uneven per-line cost; fewer cut dispatch overhead.
const ChunksPerWorker = 10

// Chunk is a contiguous slice of the input. Index is its rank among all
// chunks and alone decides where its output lands.
type Chunk struct {
	Index int
	Lines []string
}

// ChunkSize returns max(1, n/(workers*ChunksPerWorker)).
func ChunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	size := n / (workers * ChunksPerWorker)
	if size < 1 {
		size = 1
	}
	return size
}

// Partition cuts lines into ChunkSize(len(lines), workers) pieces; the last
// may be shorter. Chunks alias lines; nothing is copied.
func Partition(lines []string, workers int) []Chunk {
	if len(lines) == 0 {
		return nil
	}
	size := ChunkSize(len(lines), workers)
	chunks := make([]Chunk, 0, (len(lines)+size-1)/size)
	for start := 0; start < len(lines); start += size {
		end := start + size
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Lines: lines[start:end:end]})
	}
	return chunks
}
