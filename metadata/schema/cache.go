package schema

import "sort"

// Cache represents immutable metadata snapshot
type Cache struct {
	types    map[string]*Type
	byID     map[int64]*Type
	statuses map[string]*StatusGroup
}

// Type returns type by name
func (c *Cache) Type(name string) (*Type, bool) {
	t, ok := c.types[name]
	return t, ok
}

// TypeByID returns type by id
func (c *Cache) TypeByID(id int64) (*Type, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Classification returns classification type by name
func (c *Cache) Classification(name string) (*Type, bool) {
	t, ok := c.types[name]
	if !ok || !t.IsClassification() {
		return nil, false
	}
	return t, true
}

// StatusGroup returns status group by name
func (c *Cache) StatusGroup(name string) (*StatusGroup, bool) {
	g, ok := c.statuses[name]
	return g, ok
}

// Types returns all types ordered by name
func (c *Cache) Types() []*Type {
	var result = make([]*Type, 0, len(c.types))
	for _, t := range c.types {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// StatusGroups returns number of status groups
func (c *Cache) StatusGroups() int {
	return len(c.statuses)
}
