package selection

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
	"github.com/viant/parsly/matcher/option"
)

const (
	whitespaceCode int = iota
	attributeKeyword
	linkToKeyword
	classKeyword
	idKeyword
	nameBlockCode
	dotCode
)

var whitespaceToken = parsly.NewToken(whitespaceCode, "whitespace", matcher.NewWhiteSpace())
var attributeToken = parsly.NewToken(attributeKeyword, "attribute", matcher.NewFragment("attribute", &option.Case{}))
var linkToToken = parsly.NewToken(linkToKeyword, "linkto", matcher.NewFragment("linkto", &option.Case{}))
var classToken = parsly.NewToken(classKeyword, "class", matcher.NewFragment("class", &option.Case{}))
var idToken = parsly.NewToken(idKeyword, "id", matcher.NewFragment("id", &option.Case{}))
var nameBlockToken = parsly.NewToken(nameBlockCode, "[name]", matcher.NewBlock('[', ']', '\\'))
var dotToken = parsly.NewToken(dotCode, ".", matcher.NewByte('.'))
