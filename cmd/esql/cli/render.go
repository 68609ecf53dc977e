package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/efaps/esql/metadata"
	"github.com/efaps/esql/query"
	"github.com/efaps/esql/query/table"
	"github.com/spf13/cobra"
)

// renderedColumn represents rendered column in JSON output
type renderedColumn struct {
	Position   int    `json:"position"`
	Expression string `json:"expression"`
	Alias      string `json:"alias"`
	Column     string `json:"column"`
}

// renderedStatement represents rendered statement in JSON output
type renderedStatement struct {
	ID      string            `json:"id"`
	SQL     string            `json:"sql"`
	Args    []interface{}     `json:"args,omitempty"`
	Columns []*renderedColumn `json:"columns"`
}

// NewRenderCommand creates render command
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "render <type>",
		Short: "Print SQL and column map of a query without executing it",
		Long: `Resolves select expressions, filters and order clauses against the schema
and prints the SQL of the configured dialect together with the result column map.
The schema is read from the configured URL.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			logger := newLogger(rootOpts, cmd.ErrOrStderr())
			dialect, err := lookupDialect(cfg.Dialect)
			if err != nil {
				return err
			}
			cache, err := loadSchema(cmd.Context(), metadata.New(logger), cfg, nil)
			if err != nil {
				return err
			}
			aQuery, err := flags.build(cache, args[0], dialect, logger)
			if err != nil {
				return err
			}
			statement, err := aQuery.Build()
			if err != nil {
				return err
			}
			return writeStatement(cmd.OutOrStdout(), rootOpts.Format, statement)
		},
	}
	flags.register(cmd)
	return cmd
}

func writeStatement(w io.Writer, format string, statement *query.Statement) error {
	rendered := &renderedStatement{ID: statement.ID, SQL: statement.SQL, Args: statement.Args}
	for _, column := range statement.Columns {
		rendered.Columns = append(rendered.Columns, &renderedColumn{
			Position:   column.Position,
			Expression: column.Expression,
			Alias:      table.Alias(column.Index),
			Column:     column.Name,
		})
	}
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rendered)
	}
	fmt.Fprintln(w, rendered.SQL)
	if len(rendered.Args) > 0 {
		fmt.Fprintf(w, "args: %v\n", rendered.Args)
	}
	for _, column := range rendered.Columns {
		fmt.Fprintf(w, "%d\t%s\t%s.%s\n", column.Position, column.Expression, column.Alias, column.Column)
	}
	return nil
}
