package database

import (
	"strings"

	"github.com/viant/parsly"
)

// Parse extracts product name and major.minor.release from a version banner,
// i.e. "PostgreSQL 13.4 on x86_64-pc-linux-gnu" or "8.0.28".
func Parse(input []byte) (*Product, error) {
	cursor := parsly.NewCursor("", input, 0)
	product := &Product{}
	if err := matchMajor(cursor, product); err != nil {
		return nil, err
	}
	matched := cursor.MatchOne(separatorToken)
	if matched.Code != separatorCode {
		//banner like "Oracle Database 11g ... Release 11.2.0" carries a leading number
		cursor.Pos++
		if err := matchMajor(cursor, product); err != nil {
			return product, nil
		}
		if matched = cursor.MatchOne(separatorToken); matched.Code != separatorCode {
			return product, nil
		}
	}
	matched = cursor.MatchOne(digitsToken)
	minor, _ := matched.Int(cursor)
	product.Minor = int(minor)

	if matched = cursor.MatchOne(separatorToken); matched.Code != separatorCode {
		return product, nil
	}
	matched = cursor.MatchOne(digitsToken)
	release, _ := matched.Int(cursor)
	product.Release = int(release)
	return product, nil
}

func matchMajor(cursor *parsly.Cursor, product *Product) error {
	matched := cursor.FindMatch(digitsToken)
	if matched.Code != digitsCode {
		return cursor.NewError(digitsToken)
	}
	if matched.Offset > 0 {
		product.Name = strings.Trim(string(cursor.Input[:matched.Offset-1]), " -\t\n")
	}
	major, _ := matched.Int(cursor)
	product.Major = int(major)
	return nil
}
