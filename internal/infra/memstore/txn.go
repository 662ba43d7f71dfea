package memstore

import "sort"

type pendingWrite struct {
	data    any
	deleted bool
}

// session is what the repositories read and write through: either a
// buffered transaction or direct single-document access.
type session interface {
	get(coll, id string) (any, bool)
	put(coll, id string, data any)
	remove(coll, id string)
	list(coll string) []any
}

type txn struct {
	store  *Store
	reads  map[docKey]uint64
	writes map[docKey]*pendingWrite
}

func newTxn(store *Store) *txn {
	return &txn{
		store:  store,
		reads:  make(map[docKey]uint64),
		writes: make(map[docKey]*pendingWrite),
	}
}

func (t *txn) get(coll, id string) (any, bool) {
	key := docKey{coll: coll, id: id}
	if w, ok := t.writes[key]; ok {
		if w.deleted {
			return nil, false
		}
		return w.data, true
	}
	data, version := t.store.read(key)
	if _, seen := t.reads[key]; !seen {
		t.reads[key] = version
	}
	return data, version != 0
}

func (t *txn) put(coll, id string, data any) {
	t.writes[docKey{coll: coll, id: id}] = &pendingWrite{data: data}
}

func (t *txn) remove(coll, id string) {
	t.writes[docKey{coll: coll, id: id}] = &pendingWrite{deleted: true}
}

func (t *txn) list(coll string) []any {
	docs, membership := t.store.scan(coll)
	scanKey := docKey{coll: coll, id: scanID}
	if _, seen := t.reads[scanKey]; !seen {
		t.reads[scanKey] = membership
	}

	merged := make(map[string]any, len(docs))
	for id, doc := range docs {
		key := docKey{coll: coll, id: id}
		if _, seen := t.reads[key]; !seen {
			t.reads[key] = doc.version
		}
		merged[id] = doc.data
	}
	for key, w := range t.writes {
		if key.coll != coll {
			continue
		}
		if w.deleted {
			delete(merged, key.id)
			continue
		}
		merged[key.id] = w.data
	}
	return sortedValues(merged)
}

func (t *txn) commit() bool {
	return t.store.commit(t.reads, t.writes)
}

// stale reports whether anything this transaction read has since changed.
func (t *txn) stale() bool {
	return !t.store.validate(t.reads)
}

// direct applies every write immediately.
type direct struct {
	store *Store
}

func (d direct) get(coll, id string) (any, bool) {
	data, version := d.store.read(docKey{coll: coll, id: id})
	return data, version != 0
}

func (d direct) put(coll, id string, data any) {
	d.store.commit(nil, map[docKey]*pendingWrite{{coll: coll, id: id}: {data: data}})
}

func (d direct) remove(coll, id string) {
	d.store.commit(nil, map[docKey]*pendingWrite{{coll: coll, id: id}: {deleted: true}})
}

func (d direct) list(coll string) []any {
	docs, _ := d.store.scan(coll)
	values := make(map[string]any, len(docs))
	for id, doc := range docs {
		values[id] = doc.data
	}
	return sortedValues(values)
}

func sortedValues(m map[string]any) []any {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
