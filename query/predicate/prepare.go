package predicate

import (
	"fmt"
	"log/slog"

	"github.com/efaps/esql/io/errx"
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/query/buffer"
	"github.com/efaps/esql/query/selection"
)

type (
	// Prepared represents predicate node with resolved columns and aliases, ready to render
	Prepared struct {
		kind       Kind
		op         Operator
		fold       bool
		column     *selection.Resolved
		operands   []*operand
		children   []*Prepared
		classIndex int
		classLink  string
	}

	operand struct {
		literal interface{}
		now     bool
		ref     *selection.Resolved
	}
)

// Prepare resolves the tree against baseType aliased at index 0, joins are requested from the shared env allocator
func (n *Node) Prepare(env *selection.Env, baseType *schema.Type, logger *slog.Logger) (*Prepared, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p := &preparer{env: env, baseType: baseType, logger: logger}
	return p.prepare(n)
}

type preparer struct {
	env      *selection.Env
	baseType *schema.Type
	logger   *slog.Logger
}

func (p *preparer) invalid(format string, args ...interface{}) error {
	return errx.InvalidPredicate(p.env.Query, fmt.Errorf(format, args...))
}

func (p *preparer) prepare(n *Node) (*Prepared, error) {
	if n == nil {
		return nil, p.invalid("predicate was nil")
	}
	switch n.Kind {
	case KindAnd, KindOr:
		if len(n.Children) == 0 {
			return nil, p.invalid("%v without children", n.Kind)
		}
		return p.prepareChildren(n)
	case KindNot:
		if len(n.Children) != 1 {
			return nil, p.invalid("%v expects 1 child, but had %v", n.Kind, len(n.Children))
		}
		return p.prepareChildren(n)
	case KindCompare:
		return p.prepareCompare(n)
	case KindIsNull, KindIsNotNull:
		column, err := p.resolve(n.Attribute)
		if err != nil {
			return nil, err
		}
		return &Prepared{kind: n.Kind, column: column}, nil
	case KindClassified:
		classification, index, err := p.env.Classification(p.baseType, 0, n.Classification)
		if err != nil {
			return nil, err
		}
		link, _ := classification.LinkAttribute()
		return &Prepared{kind: n.Kind, classIndex: index, classLink: link.Column()}, nil
	}
	return nil, p.invalid("unsupported predicate kind: %v", n.Kind)
}

func (p *preparer) prepareChildren(n *Node) (*Prepared, error) {
	result := &Prepared{kind: n.Kind, children: make([]*Prepared, 0, len(n.Children))}
	for _, child := range n.Children {
		prepared, err := p.prepare(child)
		if err != nil {
			return nil, err
		}
		result.children = append(result.children, prepared)
	}
	return result, nil
}

func (p *preparer) prepareCompare(n *Node) (*Prepared, error) {
	if _, ok := operators[n.Op]; !ok {
		return nil, p.invalid("unsupported operator: %v", int(n.Op))
	}
	if len(n.Values) == 0 {
		return nil, p.invalid("%v: comparison without values", n.Op)
	}
	if len(n.Values) > 1 && n.Op != Equal && n.Op != NotEqual {
		return nil, p.invalid("%v expects 1 value, but had %v", n.Op, len(n.Values))
	}
	column, err := p.resolve(n.Attribute)
	if err != nil {
		return nil, err
	}
	result := &Prepared{kind: n.Kind, op: n.Op, column: column}
	result.fold = n.ignoreCase && column.Attribute != nil && column.Attribute.Kind.IsString()
	for _, value := range n.Values {
		item := &operand{}
		switch value.kind {
		case valueNow:
			item.now = true
		case valueRef:
			if item.ref, err = p.resolve(&Attribute{Expression: value.ref}); err != nil {
				return nil, err
			}
		default:
			if number, ok := value.literal.(buffer.Number); ok && !number.Valid() {
				return nil, p.invalid("%v: invalid number: %q", n.Op, string(number))
			}
			item.literal = p.status(column, value.literal)
		}
		result.operands = append(result.operands, item)
	}
	return result, nil
}

func (p *preparer) resolve(attr *Attribute) (*selection.Resolved, error) {
	if attr == nil {
		return nil, p.invalid("attribute was nil")
	}
	part, err := selection.Parse(attr.Expression)
	if err != nil {
		return nil, err
	}
	return part.Resolve(p.env, p.baseType, 0)
}

// status converts symbolic status key to its id, an unknown key is passed through
func (p *preparer) status(column *selection.Resolved, literal interface{}) interface{} {
	key, ok := literal.(string)
	if !ok || column.Attribute == nil || column.Attribute.Kind != schema.KindStatus {
		return literal
	}
	groupName := column.Attribute.LinkTarget
	if groupName == "" {
		groupName = column.Type.Name
	}
	if group, ok := p.env.Cache.StatusGroup(groupName); ok {
		if id, ok := group.Lookup(key); ok {
			return id
		}
	}
	p.logger.Warn("unresolved status", "type", column.Type.Name, "attribute", column.Attribute.Name, "value", key)
	return literal
}
