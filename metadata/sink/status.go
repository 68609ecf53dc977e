package sink

//Status represent dictionary status row
type Status struct {
	ID   int64  `sqlx:"ID"`
	Type int64  `sqlx:"DMTYPE"`
	Key  string `sqlx:"KEYNAME"`
}
