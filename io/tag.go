package io

import (
	"strings"
)

//Tag represent field tag
type Tag struct {
	Column    string
	Transient bool
}

//ParseTag parses tag
func ParseTag(tagString string) *Tag {
	tag := &Tag{}
	if tagString == "-" {
		tag.Transient = true
		return tag
	}
	elements := strings.Split(tagString, ",")
	for i, element := range elements {
		nv := strings.SplitN(element, "=", 2)
		switch len(nv) {
		case 2:
			if strings.ToLower(strings.TrimSpace(nv[0])) == "name" {
				tag.Column = strings.TrimSpace(nv[1])
			}
		case 1:
			if i == 0 {
				tag.Column = strings.TrimSpace(element)
			}
		}
	}
	return tag
}
