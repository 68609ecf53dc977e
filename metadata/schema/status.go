package schema

import "sort"

// StatusGroup represents status keys of a status type
type StatusGroup struct {
	Name string
	keys map[string]int64
}

// NewStatusGroup creates status group
func NewStatusGroup(name string) *StatusGroup {
	return &StatusGroup{Name: name, keys: map[string]int64{}}
}

// Add adds status key
func (g *StatusGroup) Add(key string, id int64) {
	g.keys[key] = id
}

// Lookup returns status id for supplied key
func (g *StatusGroup) Lookup(key string) (int64, bool) {
	id, ok := g.keys[key]
	return id, ok
}

// Keys returns sorted status keys
func (g *StatusGroup) Keys() []string {
	var result = make([]string, 0, len(g.keys))
	for k := range g.keys {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
