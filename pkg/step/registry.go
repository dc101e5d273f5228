package step

// Registry assigns sequential ids to records and deduplicates them by
// their (type, params) key. One registry serves exactly one generation
// run; it is not safe for concurrent use.
type Registry struct {
	records []Record
	index   map[recordKey]int
	next    int
}

type recordKey struct {
	typ    string
	params string
}

// NewRegistry returns a registry whose first assigned id is lastID+1,
// continuing the numbering of the scaffold it splices into.
func NewRegistry(lastID int) *Registry {
	return &Registry{
		index: make(map[recordKey]int),
		next:  lastID + 1,
	}
}

// Intern returns the id of the record with the given type and formatted
// parameter text, appending a new record only when no identical one
// exists. Dedup is equality on the formatted payload, not geometric
// identity, so callers must format parameters deterministically.
func (r *Registry) Intern(typ, params string) int {
	key := recordKey{typ: typ, params: params}
	if id, ok := r.index[key]; ok {
		return id
	}
	id := r.next
	r.next++
	r.records = append(r.records, Record{ID: id, Type: typ, Params: params})
	r.index[key] = id
	return id
}

// Records returns the interned records in creation order. The slice is
// shared with the registry; callers must not modify it.
func (r *Registry) Records() []Record { return r.records }

// Len returns the number of interned records.
func (r *Registry) Len() int { return len(r.records) }

// NextID returns the id the next new record would receive.
func (r *Registry) NextID() int { return r.next }
