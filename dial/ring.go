package dial

// bucketRing is a fixed ring of FIFO queues indexed by distance mod len(buckets).
// A bucket is a slice plus a read head; it is rewound once drained so the
// backing array is reused.
type bucketRing struct {
	buckets [][]int
	heads   []int
}

// newBucketRing allocates size empty buckets.
func newBucketRing(size int) *bucketRing {
	return &bucketRing{
		buckets: make([][]int, size),
		heads:   make([]int, size),
	}
}

// slot maps a distance or level to its bucket.
func (r *bucketRing) slot(d int64) int {
	return int(d % int64(len(r.buckets)))
}

// push appends cell to the bucket of distance d.
func (r *bucketRing) push(d int64, cell int) {
	b := r.slot(d)
	r.buckets[b] = append(r.buckets[b], cell)
}

// empty reports whether the bucket for level holds no pending entry.
func (r *bucketRing) empty(level int64) bool {
	b := r.slot(level)
	return r.heads[b] == len(r.buckets[b])
}

// pop removes the oldest entry of the bucket for level. The bucket must not be empty.
func (r *bucketRing) pop(level int64) int {
	b := r.slot(level)
	cell := r.buckets[b][r.heads[b]]
	r.heads[b]++
	if r.heads[b] == len(r.buckets[b]) {
		r.buckets[b] = r.buckets[b][:0]
		r.heads[b] = 0
	}

	return cell
}
