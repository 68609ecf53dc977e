package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	// Document represents declarative schema definition
	Document struct {
		Tables   []*TableDef  `yaml:"tables"`
		Types    []*TypeDef   `yaml:"types"`
		Statuses []*StatusDef `yaml:"statuses,omitempty"`
	}

	// TableDef represents table definition
	TableDef struct {
		Name       string `yaml:"name"`
		TypeColumn string `yaml:"typeColumn,omitempty"`
	}

	// TypeDef represents type definition
	TypeDef struct {
		ID             int64              `yaml:"id"`
		Name           string             `yaml:"name"`
		Parent         string             `yaml:"parent,omitempty"`
		Table          string             `yaml:"table,omitempty"`
		Classification *ClassificationDef `yaml:"classification,omitempty"`
		Attributes     []*AttributeDef    `yaml:"attributes,omitempty"`
	}

	// ClassificationDef represents classification definition
	ClassificationDef struct {
		Link       string `yaml:"link"`
		Classifies string `yaml:"classifies,omitempty"`
	}

	// AttributeDef represents attribute definition
	AttributeDef struct {
		ID      int64    `yaml:"id,omitempty"`
		Name    string   `yaml:"name"`
		Kind    string   `yaml:"kind"`
		Table   string   `yaml:"table,omitempty"`
		Columns []string `yaml:"columns,omitempty"`
		Link    string   `yaml:"link,omitempty"`
	}

	// StatusDef represents status key of a status group
	StatusDef struct {
		Group string `yaml:"group"`
		Key   string `yaml:"key"`
		ID    int64  `yaml:"id"`
	}
)

// Decode decodes YAML document
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return doc, nil
}

// Build builds validated cache
func (d *Document) Build() (*Cache, error) {
	b := &builder{
		doc:    d,
		tables: map[string]*Table{},
		cache: &Cache{
			types:    map[string]*Type{},
			byID:     map[int64]*Type{},
			statuses: map[string]*StatusGroup{},
		},
		defs: map[string]*TypeDef{},
	}
	for _, step := range []func() error{b.buildTables, b.buildTypes, b.linkParents, b.assignTables, b.buildClassifications, b.buildAttributes, b.validateClassifications, b.buildStatuses} {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return b.cache, nil
}

type builder struct {
	doc    *Document
	tables map[string]*Table
	defs   map[string]*TypeDef
	cache  *Cache
}

func (b *builder) buildTables() error {
	for _, def := range b.doc.Tables {
		if def.Name == "" {
			return fmt.Errorf("table name was empty")
		}
		if _, ok := b.tables[def.Name]; ok {
			return fmt.Errorf("duplicate table: %v", def.Name)
		}
		b.tables[def.Name] = &Table{Name: def.Name, TypeColumn: def.TypeColumn}
	}
	return nil
}

func (b *builder) buildTypes() error {
	for _, def := range b.doc.Types {
		if def.Name == "" {
			return fmt.Errorf("type name was empty")
		}
		if _, ok := b.cache.types[def.Name]; ok {
			return fmt.Errorf("duplicate type: %v", def.Name)
		}
		t := &Type{ID: def.ID, Name: def.Name, attributes: map[string]*Attribute{}}
		if def.ID != 0 {
			if prev, ok := b.cache.byID[def.ID]; ok {
				return fmt.Errorf("duplicate type id %v: %v, %v", def.ID, prev.Name, def.Name)
			}
			b.cache.byID[def.ID] = t
		}
		b.cache.types[def.Name] = t
		b.defs[def.Name] = def
	}
	return nil
}

func (b *builder) linkParents() error {
	for name, def := range b.defs {
		if def.Parent == "" {
			continue
		}
		parent, ok := b.cache.types[def.Parent]
		if !ok {
			return fmt.Errorf("type %v: unknown parent type: %v", name, def.Parent)
		}
		t := b.cache.types[name]
		t.Parent = parent
		parent.children = append(parent.children, t)
	}
	for name, t := range b.cache.types {
		t.sortChildren()
		steps := 0
		for candidate := t.Parent; candidate != nil; candidate = candidate.Parent {
			if candidate == t || steps > len(b.cache.types) {
				return fmt.Errorf("type %v: cyclic inheritance", name)
			}
			steps++
		}
	}
	return nil
}

func (b *builder) assignTables() error {
	for name := range b.defs {
		if _, err := b.mainTable(name); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) mainTable(name string) (*Table, error) {
	t := b.cache.types[name]
	if t.MainTable != nil {
		return t.MainTable, nil
	}
	def := b.defs[name]
	if def.Table != "" {
		table, ok := b.tables[def.Table]
		if !ok {
			return nil, fmt.Errorf("type %v: unknown table: %v", name, def.Table)
		}
		t.MainTable = table
		return table, nil
	}
	if t.Parent == nil {
		return nil, fmt.Errorf("type %v: table was not defined", name)
	}
	table, err := b.mainTable(t.Parent.Name)
	if err != nil {
		return nil, err
	}
	t.MainTable = table
	return table, nil
}

func (b *builder) buildClassifications() error {
	for name, def := range b.defs {
		if def.Classification == nil {
			continue
		}
		t := b.cache.types[name]
		classification := &Classification{Link: def.Classification.Link}
		if def.Classification.Classifies != "" {
			classified, ok := b.cache.types[def.Classification.Classifies]
			if !ok {
				return fmt.Errorf("classification %v: unknown classified type: %v", name, def.Classification.Classifies)
			}
			classification.Classifies = classified
		}
		t.Classification = classification
	}
	for _, t := range b.cache.types {
		b.inheritClassification(t)
	}
	return nil
}

func (b *builder) inheritClassification(t *Type) *Classification {
	if t.Parent == nil {
		return t.Classification
	}
	parent := b.inheritClassification(t.Parent)
	if parent == nil {
		return t.Classification
	}
	if t.Classification == nil {
		t.Classification = &Classification{}
	}
	if t.Classification.Link == "" {
		t.Classification.Link = parent.Link
	}
	if t.Classification.Classifies == nil {
		t.Classification.Classifies = parent.Classifies
	}
	return t.Classification
}

func (b *builder) buildAttributes() error {
	for _, def := range b.doc.Types {
		t := b.cache.types[def.Name]
		for _, attrDef := range def.Attributes {
			attr, err := b.buildAttribute(t, attrDef)
			if err != nil {
				return err
			}
			if _, ok := t.attributes[attr.Name]; ok {
				return fmt.Errorf("type %v: duplicate attribute: %v", t.Name, attr.Name)
			}
			t.addAttribute(attr)
		}
	}
	return nil
}

func (b *builder) buildAttribute(t *Type, def *AttributeDef) (*Attribute, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("type %v: attribute name was empty", t.Name)
	}
	kind, err := ParseKind(def.Kind)
	if err != nil {
		return nil, fmt.Errorf("type %v: attribute %v: %w", t.Name, def.Name, err)
	}
	attr := &Attribute{ID: def.ID, Name: def.Name, Kind: kind, Table: t.MainTable, Columns: def.Columns, LinkTarget: def.Link}
	if def.Table != "" {
		table, ok := b.tables[def.Table]
		if !ok {
			return nil, fmt.Errorf("type %v: attribute %v: unknown table: %v", t.Name, def.Name, def.Table)
		}
		attr.Table = table
	}
	if len(attr.Columns) == 0 {
		attr.Columns = []string{strings.ToUpper(def.Name)}
	}
	if len(attr.Columns) < kind.Columns() {
		return nil, fmt.Errorf("type %v: attribute %v: expected %v columns, but had %v", t.Name, def.Name, kind.Columns(), len(attr.Columns))
	}
	switch kind {
	case KindLink, KindLinkWithUoM:
		if _, ok := b.cache.types[def.Link]; !ok {
			return nil, fmt.Errorf("type %v: attribute %v: unknown link type: %q", t.Name, def.Name, def.Link)
		}
	}
	return attr, nil
}

func (b *builder) validateClassifications() error {
	for name, t := range b.cache.types {
		if t.Classification == nil {
			continue
		}
		if t.Classification.Classifies == nil {
			return fmt.Errorf("classification %v: classified type was not defined", name)
		}
		link, ok := t.LinkAttribute()
		if !ok {
			return fmt.Errorf("classification %v: unknown link attribute: %q", name, t.Classification.Link)
		}
		if link.Table != t.MainTable {
			return fmt.Errorf("classification %v: link attribute %v is not stored in %v", name, link.Name, t.MainTable.Name)
		}
	}
	return nil
}

func (b *builder) buildStatuses() error {
	for _, def := range b.doc.Statuses {
		group, ok := b.cache.statuses[def.Group]
		if !ok {
			group = NewStatusGroup(def.Group)
			b.cache.statuses[def.Group] = group
		}
		if _, ok := group.Lookup(def.Key); ok {
			return fmt.Errorf("status group %v: duplicate key: %v", def.Group, def.Key)
		}
		group.Add(def.Key, def.ID)
	}
	return nil
}
