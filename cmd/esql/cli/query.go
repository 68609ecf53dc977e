package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/efaps/esql/metadata"
	"github.com/efaps/esql/query"
	"github.com/spf13/cobra"
)

// NewQueryCommand creates query command
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "query <type>",
		Short: "Execute a query and print result rows",
		Long: `Connects with the configured driver and DSN, builds the query and prints result rows.
Without a configured schema URL the schema is read from the dictionary tables,
without a configured dialect it is detected from the connection.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			if cfg.DSN == "" {
				return fmt.Errorf("dsn was not configured")
			}
			ctx := cmd.Context()
			logger := newLogger(rootOpts, cmd.ErrOrStderr())
			db, err := sql.Open(cfg.Driver, cfg.DSN)
			if err != nil {
				return err
			}
			defer db.Close()
			srv := metadata.New(logger)
			dialect, err := lookupDialect(cfg.Dialect)
			if err != nil {
				return err
			}
			if cfg.Dialect == "" {
				if dialect, err = srv.DetectDialect(ctx, db); err != nil {
					return err
				}
			}
			cache, err := loadSchema(ctx, srv, cfg, db)
			if err != nil {
				return err
			}
			aQuery, err := flags.build(cache, args[0], dialect, logger)
			if err != nil {
				return err
			}
			cursor, err := aQuery.Execute(ctx, db)
			if err != nil {
				return err
			}
			defer cursor.Close()
			return writeRows(cmd.OutOrStdout(), rootOpts.Format, cursor)
		},
	}
	flags.register(cmd)
	return cmd
}

func writeRows(w io.Writer, format string, cursor *query.Cursor) error {
	expressions := cursor.Statement().Expressions()
	if format == "json" {
		encoder := json.NewEncoder(w)
		for cursor.Next() {
			row := make(map[string]interface{}, len(expressions))
			for _, expression := range expressions {
				row[expression], _ = cursor.Value(expression)
			}
			if err := encoder.Encode(row); err != nil {
				return err
			}
		}
		return cursor.Err()
	}
	fmt.Fprintln(w, strings.Join(expressions, "\t"))
	values := make([]string, len(expressions))
	for cursor.Next() {
		for i, expression := range expressions {
			value, _ := cursor.Value(expression)
			if value == nil {
				values[i] = "NULL"
				continue
			}
			values[i] = fmt.Sprint(value)
		}
		fmt.Fprintln(w, strings.Join(values, "\t"))
	}
	return cursor.Err()
}
