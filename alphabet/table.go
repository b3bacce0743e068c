package alphabet

// Table maps symbol classes of an Alphabet to arbitrary values: state
// indices for a DFA, sets of state indices for an NFA. Lookup by symbol
// first finds the unique class containing it (binary search on the
// sorted range list) then returns the associated value; lookup by class
// index returns the value directly. Assigning a value to a new class
// refines the table's alphabet, and values for any classes the new one
// splits are inherited from their parent — the same "refine in place"
// contract spec §4.1 describes for the transition table.
type Table[V any] struct {
	alphabet Alphabet
	values   []V
	set      []bool
}

// NewTable creates an empty table with no classes.
func NewTable[V any]() *Table[V] {
	return &Table[V]{}
}

// Alphabet returns the table's current alphabet.
func (t *Table[V]) Alphabet() Alphabet {
	return t.alphabet
}

// Get looks up the value associated with the class containing s. The
// second return is false if s falls outside the alphabet or the owning
// class has no value assigned.
func (t *Table[V]) Get(s Symbol) (V, bool) {
	var zero V
	idx, ok := t.alphabet.IndexOf(s)
	if !ok || idx >= len(t.set) || !t.set[idx] {
		return zero, false
	}
	return t.values[idx], true
}

// GetClass looks up the value associated with the class whose label
// matches cls's label, after locating it in the table's own alphabet.
func (t *Table[V]) GetClass(cls Class) (V, bool) {
	return t.Get(cls.Label())
}

// Assign associates value with cls, refining the table's alphabet to
// include cls as one of its input classes. Any class already present
// that cls splits inherits its old value on both halves until
// reassigned.
func (t *Table[V]) Assign(cls Class, value V) {
	inputs := make([]Class, 0, len(t.alphabet.classes)+1)
	inputs = append(inputs, t.alphabet.classes...)
	inputs = append(inputs, cls)

	oldValues := t.values
	oldSet := t.set
	oldAlphabet := t.alphabet

	refined := Refine(inputs)
	newValues := make([]V, refined.Len())
	newSet := make([]bool, refined.Len())

	newClassInput := len(inputs) - 1
	for i := range refined.classes {
		if refined.RefinesInput(i, newClassInput) {
			newValues[i] = value
			newSet[i] = true
			continue
		}
		// Inherit from whichever old class this output class refines.
		label := refined.classes[i].Label()
		if oldIdx, ok := oldAlphabet.IndexOf(label); ok && oldIdx < len(oldSet) && oldSet[oldIdx] {
			newValues[i] = oldValues[oldIdx]
			newSet[i] = true
		}
	}

	t.alphabet = refined
	t.values = newValues
	t.set = newSet
}

// Classes returns the table's classes in ascending order, alongside
// their assigned values (zero value if unassigned).
func (t *Table[V]) Classes() []Class {
	return t.alphabet.classes
}

// Entries returns every (class, value) pair that has an assigned value.
func (t *Table[V]) Entries() []TableEntry[V] {
	var out []TableEntry[V]
	for i, cls := range t.alphabet.classes {
		if t.set[i] {
			out = append(out, TableEntry[V]{Class: cls, Value: t.values[i]})
		}
	}
	return out
}

// TableEntry pairs a symbol class with its assigned value.
type TableEntry[V any] struct {
	Class Class
	Value V
}
