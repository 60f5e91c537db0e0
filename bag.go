package errorbag

import "slices"

// Bag is an ordered collection of validation error messages keyed by field,
// rule and scope.
//
// Insertion order is preserved and decides what First and All return.
// Duplicate (field, rule, scope) combinations are allowed. A Bag is not safe
// for concurrent use; it is meant to be owned by a single validation pass.
//
// Methods on Bag work on unscoped entries, except Count and Clear which span
// every scope. Use In to work within a named scope.
//
// Example:
//
//	bag := errorbag.New()
//	bag.Add("email", "The email is invalid", "email")
//	bag.In(errorbag.Named("billing")).Add("email", "The email is required", "required")
//
//	msg, ok := bag.First("email") // "The email is invalid", true
//	bag.Count()                   // 2
type Bag struct {
	entries []Entry
}

func New() *Bag {
	return &Bag{}
}

// In returns a view of the bag restricted to scope. The view shares the
// bag's storage, so mutations through it are visible on the bag.
func (b *Bag) In(scope Scope) Scoped {
	return Scoped{bag: b, scope: scope}
}

func (b *Bag) unscoped() Scoped {
	return b.In(NoScope)
}

// Add appends an unscoped entry.
func (b *Bag) Add(field, message, rule string) {
	b.unscoped().Add(field, message, rule)
}

// AddEntry appends e as is, keeping its scope.
func (b *Bag) AddEntry(e Entry) {
	b.entries = append(b.entries, e)
}

// Count returns the number of entries across all scopes.
func (b *Bag) Count() int {
	return len(b.entries)
}

// Remove deletes every unscoped entry for field.
func (b *Bag) Remove(field string) {
	b.unscoped().Remove(field)
}

// Clear deletes every entry regardless of scope. Use In(scope).Clear to
// empty a single scope.
func (b *Bag) Clear() {
	b.entries = nil
}

// Selector is ParseSelector, exposed on the bag for callers holding one.
func (b *Bag) Selector(input string) (Selector, bool) {
	return ParseSelector(input)
}

func (b *Bag) Has(key string) bool {
	return b.unscoped().Has(key)
}

func (b *Bag) First(key string) (string, bool) {
	return b.unscoped().First(key)
}

func (b *Bag) FirstOf(field, rule string) (string, bool) {
	return b.unscoped().FirstOf(field, rule)
}

func (b *Bag) All() []string {
	return b.unscoped().All()
}

func (b *Bag) Collect(field string) []string {
	return b.unscoped().Collect(field)
}

func (b *Bag) Group() *Grouped {
	return b.unscoped().Group()
}

func (b *Bag) Any() bool {
	return b.unscoped().Any()
}

func (b *Bag) Entries() []Entry {
	return b.unscoped().Entries()
}

func (b *Bag) Err() error {
	return b.unscoped().Err()
}

// Scoped is a view of a Bag restricted to exactly one scope. Every query and
// mutation on it only touches entries whose scope equals the view's scope.
type Scoped struct {
	bag   *Bag
	scope Scope
}

func (s Scoped) Scope() Scope {
	return s.scope
}

// Add appends an entry carrying the view's scope.
func (s Scoped) Add(field, message, rule string) {
	s.bag.AddEntry(NewEntry(field, message, rule, s.scope))
}

// Count returns the number of entries in the view's scope.
func (s Scoped) Count() int {
	n := 0
	for _, e := range s.bag.entries {
		if e.Scope == s.scope {
			n++
		}
	}
	return n
}

// Remove deletes every entry for field in the view's scope. Entries for the
// same field in other scopes are left alone.
func (s Scoped) Remove(field string) {
	s.deleteFunc(func(e Entry) bool { return e.Field == field })
}

// Clear deletes every entry in the view's scope.
func (s Scoped) Clear() {
	s.deleteFunc(func(Entry) bool { return true })
}

func (s Scoped) deleteFunc(match func(Entry) bool) {
	s.bag.entries = slices.DeleteFunc(s.bag.entries, func(e Entry) bool {
		return e.Scope == s.scope && match(e)
	})
}

// Has reports whether an entry matches key. A "field:rule" key must match
// both field and rule; a bare key matches the field under any rule.
func (s Scoped) Has(key string) bool {
	_, ok := s.First(key)
	return ok
}

// First returns the message of the earliest entry matching key, using the
// same matching as Has.
func (s Scoped) First(key string) (string, bool) {
	if sel, ok := ParseSelector(key); ok {
		return s.firstFunc(sel.matches)
	}
	return s.firstFunc(func(e Entry) bool { return e.Field == key })
}

// FirstOf returns the message of the earliest entry for field produced by
// rule. Unlike First it takes field and rule separately, so either may
// contain the selector delimiter.
func (s Scoped) FirstOf(field, rule string) (string, bool) {
	return s.firstFunc(Selector{Field: field, Rule: rule}.matches)
}

func (s Scoped) firstFunc(match func(Entry) bool) (string, bool) {
	for _, e := range s.bag.entries {
		if e.Scope == s.scope && match(e) {
			return e.Message, true
		}
	}
	return "", false
}

// All returns every message in the view's scope in insertion order.
func (s Scoped) All() []string {
	return s.messagesFunc(func(Entry) bool { return true })
}

// Collect returns the messages for field in insertion order.
func (s Scoped) Collect(field string) []string {
	return s.messagesFunc(func(e Entry) bool { return e.Field == field })
}

func (s Scoped) messagesFunc(match func(Entry) bool) []string {
	messages := []string{}
	for _, e := range s.bag.entries {
		if e.Scope == s.scope && match(e) {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Group returns the messages of the view's scope grouped by field. Fields
// are ordered by their first occurrence.
func (s Scoped) Group() *Grouped {
	g := newGrouped()
	for _, e := range s.bag.entries {
		if e.Scope == s.scope {
			g.append(e.Field, e.Message)
		}
	}
	return g
}

func (s Scoped) Any() bool {
	for _, e := range s.bag.entries {
		if e.Scope == s.scope {
			return true
		}
	}
	return false
}

// Entries returns copies of the entries in the view's scope in insertion
// order.
func (s Scoped) Entries() []Entry {
	entries := []Entry{}
	for _, e := range s.bag.entries {
		if e.Scope == s.scope {
			entries = append(entries, e)
		}
	}
	return entries
}

// Err returns the view's entries as an Errors value, or nil when the scope
// holds none.
func (s Scoped) Err() error {
	entries := s.Entries()
	if len(entries) == 0 {
		return nil
	}
	return Errors(entries)
}
