package predicate

import (
	"github.com/efaps/esql/query/buffer"
)

// AppendSQL renders prepared predicate into the buffer
func (p *Prepared) AppendSQL(b *buffer.SQL) error {
	switch p.kind {
	case KindAnd, KindOr:
		b.Append("(")
		for i, child := range p.children {
			if i > 0 {
				b.Append(" ", p.kind.String(), " ")
			}
			if err := child.AppendSQL(b); err != nil {
				return err
			}
		}
		b.Append(")")
	case KindNot:
		b.Append("NOT (")
		if err := p.children[0].AppendSQL(b); err != nil {
			return err
		}
		b.Append(")")
	case KindIsNull, KindIsNotNull:
		b.Column(p.column.Index, p.column.Columns[0], false)
		b.Append(" ", p.kind.String())
	case KindClassified:
		b.Column(p.classIndex, p.classLink, false)
		b.Append(" IS NOT NULL")
	case KindCompare:
		return p.appendCompare(b)
	}
	return nil
}

func (p *Prepared) appendCompare(b *buffer.SQL) error {
	if len(p.operands) == 1 {
		b.Column(p.column.Index, p.column.Columns[0], p.fold)
		b.Append(" ", p.op.String(), " ")
		return p.appendOperand(b, p.operands[0])
	}
	keyword, connective := " IN (", " OR "
	if p.op == NotEqual {
		keyword, connective = " NOT IN (", " AND "
	}
	chunks := chunk(p.operands, b.Dialect().MaxInList)
	if len(chunks) > 1 {
		b.Append("(")
	}
	for i, operands := range chunks {
		if i > 0 {
			b.Append(connective)
		}
		b.Column(p.column.Index, p.column.Columns[0], p.fold)
		b.Append(keyword)
		for j, item := range operands {
			if j > 0 {
				b.Append(", ")
			}
			if err := p.appendOperand(b, item); err != nil {
				return err
			}
		}
		b.Append(")")
	}
	if len(chunks) > 1 {
		b.Append(")")
	}
	return nil
}

func (p *Prepared) appendOperand(b *buffer.SQL, item *operand) error {
	switch {
	case item.now:
		b.Append(b.Dialect().Now())
	case item.ref != nil:
		b.Column(item.ref.Index, item.ref.Columns[0], p.fold)
	default:
		return b.Value(item.literal, p.fold)
	}
	return nil
}

func chunk(operands []*operand, size int) [][]*operand {
	if size <= 0 || len(operands) <= size {
		return [][]*operand{operands}
	}
	var result [][]*operand
	for len(operands) > size {
		result = append(result, operands[:size])
		operands = operands[size:]
	}
	return append(result, operands)
}
