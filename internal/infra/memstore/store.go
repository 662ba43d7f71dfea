// Package memstore is an in-process document store with optimistic,
// serializable transactions. Each document carries a version; a transaction
// records the version of everything it reads and commits only if none of
// those versions moved.
package memstore

import (
	"sort"
	"sync"
)

const (
	collEvents        = "events"
	collFests         = "fests"
	collRegistrations = "registrations"
	collMerch         = "merch"
	collOrders        = "merch_orders"
)

type docKey struct {
	coll string
	id   string
}

// scanID marks a read of a whole collection's membership.
const scanID = "*"

type document struct {
	version uint64
	data    any
}

type Store struct {
	mu    sync.Mutex
	seq   uint64
	docs  map[string]map[string]document
	scans map[string]uint64 // membership version per collection
}

func NewStore() *Store {
	return &Store{
		docs:  make(map[string]map[string]document),
		scans: make(map[string]uint64),
	}
}

// read returns the document and its version; version 0 means absent.
func (s *Store) read(key docKey) (any, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key.coll][key.id]
	if !ok {
		return nil, 0
	}
	return doc.data, doc.version
}

// scan returns the ids of a collection in sorted order with their versions,
// plus the membership version of the collection.
func (s *Store) scan(coll string) (map[string]document, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]document, len(s.docs[coll]))
	for id, doc := range s.docs[coll] {
		out[id] = doc
	}
	return out, s.scans[coll]
}

func (s *Store) versionLocked(key docKey) uint64 {
	if key.id == scanID {
		return s.scans[key.coll]
	}
	return s.docs[key.coll][key.id].version
}

// commit validates the read set and applies the writes atomically.
// It reports false when any read is stale.
func (s *Store) commit(reads map[docKey]uint64, writes map[docKey]*pendingWrite) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, version := range reads {
		if s.versionLocked(key) != version {
			return false
		}
	}

	keys := make([]docKey, 0, len(writes))
	for key := range writes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].coll != keys[j].coll {
			return keys[i].coll < keys[j].coll
		}
		return keys[i].id < keys[j].id
	})

	for _, key := range keys {
		w := writes[key]
		coll := s.docs[key.coll]
		if coll == nil {
			coll = make(map[string]document)
			s.docs[key.coll] = coll
		}
		_, existed := coll[key.id]
		s.seq++
		if w.deleted {
			if existed {
				delete(coll, key.id)
				s.scans[key.coll] = s.seq
			}
			continue
		}
		coll[key.id] = document{version: s.seq, data: w.data}
		if !existed {
			s.scans[key.coll] = s.seq
		}
	}
	return true
}

// validate reports whether the read set is still current.
func (s *Store) validate(reads map[docKey]uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, version := range reads {
		if s.versionLocked(key) != version {
			return false
		}
	}
	return true
}
