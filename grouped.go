package errorbag

// Grouped maps field names to their messages and remembers the order in
// which fields were first seen.
type Grouped struct {
	fields   []string
	messages map[string][]string
}

func newGrouped() *Grouped {
	return &Grouped{messages: map[string][]string{}}
}

func (g *Grouped) append(field, message string) {
	if _, ok := g.messages[field]; !ok {
		g.fields = append(g.fields, field)
	}
	g.messages[field] = append(g.messages[field], message)
}

// Fields returns the field names in first-occurrence order.
func (g *Grouped) Fields() []string {
	return append([]string{}, g.fields...)
}

// Get returns the messages for field in insertion order, or nil if the field
// has none.
func (g *Grouped) Get(field string) []string {
	messages, ok := g.messages[field]
	if !ok {
		return nil
	}
	return append([]string{}, messages...)
}

func (g *Grouped) Len() int {
	return len(g.fields)
}

// Map returns an unordered copy of the grouping.
func (g *Grouped) Map() map[string][]string {
	out := make(map[string][]string, len(g.messages))
	for field, messages := range g.messages {
		out[field] = append([]string{}, messages...)
	}
	return out
}
