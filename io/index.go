package io

import "strings"

//index maps column name variants to the matched field position
type index map[string]int

//keys returns name variants from the most to the least strict one
func keys(name string) []string {
	lower := strings.ToLower(name)
	return []string{name, lower, strings.ReplaceAll(lower, "_", "")}
}

func (i index) match(name string) int {
	for _, key := range keys(name) {
		if pos, ok := i[key]; ok {
			return pos
		}
	}
	return -1
}

//add registers name variants, the first registered field wins
func (i index) add(name string, pos int) {
	for _, key := range keys(name) {
		if _, ok := i[key]; !ok {
			i[key] = pos
		}
	}
}
