package sink

//Type represent dictionary type row
type Type struct {
	ID         int64  `sqlx:"ID"`
	Name       string `sqlx:"NAME"`
	Parent     int64  `sqlx:"PARENTDMTYPE"`
	Table      int64  `sqlx:"DMTABLE"`
	ClassLink  string `sqlx:"CLASSLINK"`
	Classifies int64  `sqlx:"CLASSIFIES"`
}
