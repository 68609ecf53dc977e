package sink

//Table represent dictionary table row
type Table struct {
	ID         int64  `sqlx:"ID"`
	Name       string `sqlx:"SQLTABLE"`
	TypeColumn string `sqlx:"SQLCOLUMNTYPE"`
}
