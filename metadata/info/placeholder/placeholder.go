// Package placeholder generates bind parameter markers
package placeholder

import "strconv"

// Default is the marker written while rendering, dialects rewrite it with their Generator
const Default = "?"

// Generator represents placeholder generator
type Generator interface {
	Resolver() func() string
	Len(start, numOfPlaceholders int) int
}

// Positional repeats Default marker
type Positional struct{}

// Resolver returns function returning Default marker
func (p *Positional) Resolver() func() string {
	return func() string {
		return Default
	}
}

// Len returns total length of placeholders
func (p *Positional) Len(start, numOfPlaceholders int) int {
	return numOfPlaceholders - start
}

// Ordinal numbers placeholders from 1 behind Prefix, i.e. $1 or @p1
type Ordinal struct {
	Prefix string
}

// Resolver returns function returning successive placeholders
func (o *Ordinal) Resolver() func() string {
	counter := 0
	return func() string {
		counter++
		return o.Prefix + strconv.Itoa(counter)
	}
}

// Len returns total length of placeholders numbered start+1 to numOfPlaceholders
func (o *Ordinal) Len(start, numOfPlaceholders int) int {
	result := 0
	for i := start + 1; i <= numOfPlaceholders; i++ {
		result += len(o.Prefix) + digits(i)
	}
	return result
}

func digits(n int) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}
