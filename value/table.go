/*
File    : lumen/value/table.go
*/
package value

import (
	"fmt"
	"math"
)

// Table is shared, interior-mutable storage from Value keys to Value
// values, with reference identity comparison. Two Table values are equal
// iff they are the same *Table pointer; Go's pointer
// equality gives this for free, so Table deliberately has no exported
// constructor that copies.
//
// Keys are compared structurally except for *Table and *Function keys,
// which use reference identity, matching Value equality generally. Since
// Go map keys must be comparable, each Value key is projected to a
// comparable hashKey via toHashKey; the original Value is retained
// alongside it so iteration and Keys() can recover it.
type Table struct {
	entries map[hashKey]tableEntry
	order   []hashKey // insertion order, for stable (if unspecified) iteration
}

type tableEntry struct {
	key hashKey
	k   Value
	v   Value
}

// hashKey is the comparable projection of a Value used as the backing Go
// map key. Exactly one of the fields is meaningful, selected by kind.
type hashKey struct {
	kind Kind
	num  float64
	str  string
	ptr  any // holds *Table or *Function; pointer identity is comparable
}

// NewTable creates a new, empty Table. Each call allocates distinct
// storage, so NewTable(); NewTable() are never equal to each other.
func NewTable() *Table {
	return &Table{entries: make(map[hashKey]tableEntry)}
}

// toHashKey projects v to a comparable Go value suitable as a map key, or
// returns an error if v cannot be a table key (Nil, or NaN).
func toHashKey(v Value) (hashKey, error) {
	switch t := v.(type) {
	case Nil:
		return hashKey{}, fmt.Errorf("table index is nil")
	case Bool:
		s := "false"
		if bool(t) {
			s = "true"
		}
		return hashKey{kind: KindBool, str: s}, nil
	case Number:
		if math.IsNaN(float64(t)) {
			return hashKey{}, fmt.Errorf("table index is NaN")
		}
		return hashKey{kind: KindNumber, num: float64(t)}, nil
	case String:
		return hashKey{kind: KindString, str: string(t)}, nil
	case *Table:
		return hashKey{kind: KindTable, ptr: t}, nil
	case *Function:
		return hashKey{kind: KindFunction, ptr: t}, nil
	default:
		return hashKey{}, fmt.Errorf("value of kind %s cannot be a table key", v.Kind())
	}
}

// Set inserts key => val. Inserting Nil as the value deletes the key
// instead. Returns an error if key is Nil or NaN.
func (t *Table) Set(key, val Value) error {
	hk, err := toHashKey(key)
	if err != nil {
		return err
	}
	if _, ok := val.(Nil); ok {
		if _, exists := t.entries[hk]; exists {
			delete(t.entries, hk)
			t.removeOrder(hk)
		}
		return nil
	}
	if _, exists := t.entries[hk]; !exists {
		t.order = append(t.order, hk)
	}
	t.entries[hk] = tableEntry{key: hk, k: key, v: val}
	return nil
}

func (t *Table) removeOrder(hk hashKey) {
	for i, k := range t.order {
		if k == hk {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// Get returns the value bound to key, or Nil if absent or key is
// unhashable (Nil/NaN lookups simply miss rather than erroring, matching
// typical Lua table-index-by-nil-returns-nil ergonomics for reads).
func (t *Table) Get(key Value) Value {
	hk, err := toHashKey(key)
	if err != nil {
		return Nil{}
	}
	if e, ok := t.entries[hk]; ok {
		return e.v
	}
	return Nil{}
}

// Len reports the number of populated entries in the table.
func (t *Table) Len() int { return len(t.entries) }

// Keys returns the table's keys in insertion order. Iteration order is
// otherwise unspecified; insertion order is simply a convenient,
// deterministic choice for this implementation.
func (t *Table) Keys() []Value {
	keys := make([]Value, 0, len(t.order))
	for _, hk := range t.order {
		keys = append(keys, t.entries[hk].k)
	}
	return keys
}

func (t *Table) Kind() Kind     { return KindTable }
func (t *Table) String() string { return fmt.Sprintf("table: %p", t) }
