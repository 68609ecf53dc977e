package selection

import (
	"github.com/efaps/esql/io/errx"
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/query/table"
)

type (
	// Env represents resolution environment shared by all select parts and predicates of a query
	Env struct {
		Cache  *schema.Cache
		Tables *table.Allocator
		Query  string
	}

	// Resolved represents resolved select expression
	Resolved struct {
		Expression string
		Index      int //alias index of the table holding Columns
		Type       *schema.Type
		Attribute  *schema.Attribute //nil for id and class segments
		Columns    []string
	}
)

// Resolve resolves select expression starting at baseType correlated by index
func (p *Part) Resolve(env *Env, baseType *schema.Type, index int) (*Resolved, error) {
	current, idx := baseType, index
	for part := p; part != nil; part = part.Next {
		switch part.Kind {
		case KindID:
			return &Resolved{Expression: p.String(), Index: idx, Type: current, Columns: []string{schema.IDColumn}}, nil
		case KindAttribute:
			attr, attrIdx, err := env.Attribute(current, idx, part.Name)
			if err != nil {
				return nil, err
			}
			return &Resolved{Expression: p.String(), Index: attrIdx, Type: current, Attribute: attr, Columns: attr.Columns}, nil
		case KindLinkTo:
			attr, attrIdx, err := env.Attribute(current, idx, part.Name)
			if err != nil {
				return nil, err
			}
			target, err := env.linkTarget(current, attr)
			if err != nil {
				return nil, err
			}
			if part.Terminal() {
				return &Resolved{Expression: p.String(), Index: attrIdx, Type: target, Attribute: attr, Columns: attr.Columns[:1]}, nil
			}
			if idx, err = env.Tables.Ensure(target.MainTable.Name, attr.Column(), attrIdx, schema.IDColumn, attr.Column()); err != nil {
				return nil, err
			}
			current = target
		case KindClass:
			classification, clsIdx, err := env.Classification(current, idx, part.Name)
			if err != nil {
				return nil, err
			}
			if part.Terminal() {
				return &Resolved{Expression: p.String(), Index: clsIdx, Type: classification, Columns: []string{schema.IDColumn}}, nil
			}
			current, idx = classification, clsIdx
		}
	}
	return nil, errx.Syntax(p.String(), nil)
}

// Attribute looks up attribute on the type and returns alias index of the table storing it,
// attributes outside of the type main table are joined by ID to the correlation index
func (e *Env) Attribute(owner *schema.Type, index int, name string) (*schema.Attribute, int, error) {
	attr, ok := owner.Attribute(name)
	if !ok {
		return nil, 0, errx.UnknownAttribute(e.Query, owner.Name, name)
	}
	if attr.Table == owner.MainTable {
		return attr, index, nil
	}
	attrIdx, err := e.Tables.Ensure(attr.Table.Name, schema.IDColumn, index, schema.IDColumn, schema.IDColumn)
	if err != nil {
		return nil, 0, err
	}
	return attr, attrIdx, nil
}

// Classification joins classification main table to the correlation index and returns its alias index
func (e *Env) Classification(owner *schema.Type, index int, name string) (*schema.Type, int, error) {
	classification, ok := e.Cache.Classification(name)
	if !ok || !owner.IsClassifiedBy(classification) {
		return nil, 0, errx.UnknownClassification(e.Query, owner.Name, name)
	}
	link, ok := classification.LinkAttribute()
	if !ok {
		return nil, 0, errx.UnknownAttribute(e.Query, classification.Name, classification.Classification.Link)
	}
	clsIdx, err := e.Tables.Ensure(classification.MainTable.Name, link.Column(), index, link.Column(), schema.IDColumn)
	if err != nil {
		return nil, 0, err
	}
	return classification, clsIdx, nil
}

func (e *Env) linkTarget(owner *schema.Type, attr *schema.Attribute) (*schema.Type, error) {
	if !attr.IsLink() {
		return nil, errx.NotLink(e.Query, owner.Name, attr.Name)
	}
	target, ok := e.Cache.Type(attr.LinkTarget)
	if !ok {
		return nil, errx.UnknownType(e.Query, attr.LinkTarget)
	}
	return target, nil
}
