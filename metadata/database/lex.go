package database

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	digitsCode int = iota + 1
	separatorCode
)

var digitsToken = parsly.NewToken(digitsCode, "digits", matcher.NewDigits())

var separatorToken = parsly.NewToken(separatorCode, "separator", matcher.NewCharset(".:-"))
