package order

// List is an ordered collection of order identifiers.
// Duplicates are allowed and nothing is validated.
type List struct {
	ids []string
}

func NewList(ids ...string) *List {
	l := &List{ids: make([]string, 0, len(ids))}
	l.ids = append(l.ids, ids...)
	return l
}

func (l *List) Push(id string) {
	l.ids = append(l.ids, id)
}

// Filter replaces the collection with the entries for which keep returns true.
func (l *List) Filter(keep func(id string) bool) {
	kept := make([]string, 0, len(l.ids))
	for _, id := range l.ids {
		if keep(id) {
			kept = append(kept, id)
		}
	}
	l.ids = kept
}

func (l *List) Contains(id string) bool {
	for _, v := range l.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (l *List) Len() int {
	return len(l.ids)
}

// IDs returns a copy of the identifiers, oldest first.
func (l *List) IDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}
