package sink

//Attribute represent dictionary attribute row
type Attribute struct {
	ID      int64  `sqlx:"ID"`
	Name    string `sqlx:"NAME"`
	Type    int64  `sqlx:"DMTYPE"`
	Table   int64  `sqlx:"DMTABLE"`
	Kind    string `sqlx:"DMATTRIBUTETYPE"`
	Columns string `sqlx:"SQLCOLUMN"` //comma separated
	Link    int64  `sqlx:"DMTYPELINK"`
}
