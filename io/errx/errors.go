package errx

import (
	"errors"
	"strings"
)

var (
	// ErrSchema groups schema-resolution failures.
	ErrSchema = errors.New("schema resolution")

	// ErrUnknownType indicates a type name that is not present in the metadata cache.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAttribute indicates an attribute name that the resolved type does not declare.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownClassification indicates a classification name that is not present or does not
	// classify the resolved type.
	ErrUnknownClassification = errors.New("unknown classification")

	// ErrNotLink indicates a linkto segment naming an attribute that does not reference another type.
	ErrNotLink = errors.New("attribute is not a link")

	// ErrSyntax indicates a malformed select expression.
	ErrSyntax = errors.New("malformed select expression")

	// ErrInvalidPredicate indicates a predicate tree the caller built incorrectly
	// (empty AND/OR, wrong value count, incompatible value).
	ErrInvalidPredicate = errors.New("invalid predicate")

	// ErrMisuse indicates a programmer error in the build protocol, i.e. an alias key reused
	// with a different join condition or an allocation after the allocator was sealed.
	ErrMisuse = errors.New("misuse")

	// ErrExecution marks an error returned by the database once SQL was sent.
	ErrExecution = errors.New("execution")
)

// Error carries structured context while remaining compatible with errors.Is().
type Error struct {
	Kind           error
	Op             string
	Query          string
	Type           string
	Attribute      string
	Classification string
	Expression     string
	Cause          error
}

func (e *Error) Error() string {
	sb := &strings.Builder{}
	sb.WriteString("esql")
	if e.Op != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Op)
	}
	sb.WriteString(": ")
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	} else {
		sb.WriteString("error")
	}
	appendField(sb, "query", e.Query)
	appendField(sb, "type", e.Type)
	appendField(sb, "attribute", e.Attribute)
	appendField(sb, "classification", e.Classification)
	appendField(sb, "expression", e.Expression)
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func appendField(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString("=")
	sb.WriteString(value)
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if e.Kind != nil && target == e.Kind {
		return true
	}
	if target == ErrSchema && isSchemaKind(e.Kind) {
		return true
	}
	if e.Cause != nil {
		return errors.Is(e.Cause, target)
	}
	return false
}

func isSchemaKind(kind error) bool {
	return kind == ErrUnknownType || kind == ErrUnknownAttribute || kind == ErrUnknownClassification || kind == ErrNotLink
}

// UnknownType returns a schema error for a missing type
func UnknownType(query, typeName string) error {
	return &Error{Kind: ErrUnknownType, Op: "resolve", Query: query, Type: typeName}
}

// UnknownAttribute returns a schema error naming the query, the type and the missing attribute
func UnknownAttribute(query, typeName, attribute string) error {
	return &Error{Kind: ErrUnknownAttribute, Op: "resolve", Query: query, Type: typeName, Attribute: attribute}
}

// UnknownClassification returns a schema error for a classification that cannot be joined to typeName
func UnknownClassification(query, typeName, classification string) error {
	return &Error{Kind: ErrUnknownClassification, Op: "resolve", Query: query, Type: typeName, Classification: classification}
}

// NotLink returns a schema error for a non link attribute used as a join path
func NotLink(query, typeName, attribute string) error {
	return &Error{Kind: ErrNotLink, Op: "resolve", Query: query, Type: typeName, Attribute: attribute}
}

// Syntax returns a malformed expression error
func Syntax(expression string, cause error) error {
	return &Error{Kind: ErrSyntax, Op: "parse", Expression: expression, Cause: cause}
}

// InvalidPredicate returns a predicate construction error
func InvalidPredicate(query string, cause error) error {
	return &Error{Kind: ErrInvalidPredicate, Op: "prepare", Query: query, Cause: cause}
}

// Misuse returns a build protocol violation
func Misuse(op string, cause error) error {
	return &Error{Kind: ErrMisuse, Op: op, Cause: cause}
}

// Execution wraps a database error; the cause is preserved for errors.Is/As.
func Execution(query string, cause error) error {
	return &Error{Kind: ErrExecution, Op: "execute", Query: query, Cause: cause}
}

func IsSchema(err error) bool { return errors.Is(err, ErrSchema) }

func IsSyntax(err error) bool { return errors.Is(err, ErrSyntax) }

func IsMisuse(err error) bool { return errors.Is(err, ErrMisuse) }

func IsExecution(err error) bool { return errors.Is(err, ErrExecution) }
