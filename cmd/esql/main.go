package main

import (
	"fmt"
	"os"

	_ "github.com/denisenkom/go-mssqldb"
	"github.com/efaps/esql/cmd/esql/cli"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
