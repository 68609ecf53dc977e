package schema

import "sort"

type (
	// Type represents business object type
	Type struct {
		ID             int64
		Name           string
		Parent         *Type
		MainTable      *Table
		Classification *Classification //non nil for classification types
		attributes     map[string]*Attribute
		declared       []*Attribute
		children       []*Type
	}

	// Classification represents classification specific type settings
	Classification struct {
		Link       string //classification attribute holding classified object id
		Classifies *Type
	}
)

// Attribute returns attribute declared on the type or any of its ancestors
func (t *Type) Attribute(name string) (*Attribute, bool) {
	for candidate := t; candidate != nil; candidate = candidate.Parent {
		if attr, ok := candidate.attributes[name]; ok {
			return attr, true
		}
	}
	return nil, false
}

// Attributes returns attributes declared on the type
func (t *Type) Attributes() []*Attribute {
	return t.declared
}

// Children returns direct sub types
func (t *Type) Children() []*Type {
	return t.children
}

// Descendants returns the type followed by all its sub types
func (t *Type) Descendants() []*Type {
	var result = []*Type{t}
	for i := 0; i < len(result); i++ {
		result = append(result, result[i].children...)
	}
	return result
}

// IsKindOf returns true if type is other or inherits from it
func (t *Type) IsKindOf(other *Type) bool {
	for candidate := t; candidate != nil; candidate = candidate.Parent {
		if candidate == other {
			return true
		}
	}
	return false
}

// IsClassification returns true if type is a classification
func (t *Type) IsClassification() bool {
	return t.Classification != nil
}

// IsClassifiedBy returns true if classification can be attached to the type
func (t *Type) IsClassifiedBy(classification *Type) bool {
	if classification == nil || classification.Classification == nil || classification.Classification.Classifies == nil {
		return false
	}
	return t.IsKindOf(classification.Classification.Classifies)
}

// LinkAttribute returns classification attribute correlating to classified object id
func (t *Type) LinkAttribute() (*Attribute, bool) {
	if t.Classification == nil {
		return nil, false
	}
	return t.Attribute(t.Classification.Link)
}

func (t *Type) addAttribute(attr *Attribute) {
	attr.Owner = t
	t.attributes[attr.Name] = attr
	t.declared = append(t.declared, attr)
}

func (t *Type) sortChildren() {
	sort.Slice(t.children, func(i, j int) bool {
		return t.children[i].ID < t.children[j].ID
	})
}
