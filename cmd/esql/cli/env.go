package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/efaps/esql/metadata"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/product/ansi"
	_ "github.com/efaps/esql/metadata/product/mysql"
	_ "github.com/efaps/esql/metadata/product/oracle"
	_ "github.com/efaps/esql/metadata/product/pg"
	_ "github.com/efaps/esql/metadata/product/sqlite"
	_ "github.com/efaps/esql/metadata/product/sqlserver"
	"github.com/efaps/esql/metadata/registry"
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/query"
	"github.com/efaps/esql/query/predicate"
	"github.com/spf13/cobra"
)

// queryFlags holds flags shared by render and query commands
type queryFlags struct {
	selects    []string
	filters    []string
	orders     []string
	ignoreCase bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.selects, "select", "s", nil, "select expression, i.e. linkto[Creator].attribute[Name]")
	cmd.Flags().StringArrayVarP(&f.filters, "where", "w", nil, "filter <expression><op><value>[,<value>], joined with AND")
	cmd.Flags().StringArrayVarP(&f.orders, "order", "o", nil, "order expression, optionally followed by asc|desc")
	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "case insensitive string filters")
}

func (f *queryFlags) build(cache *schema.Cache, typeName string, dialect *info.Dialect, logger *slog.Logger) (*query.Query, error) {
	aQuery, err := query.New(cache, typeName, dialect, logger)
	if err != nil {
		return nil, err
	}
	aQuery.Select(f.selects...)
	switch len(f.filters) {
	case 0:
	case 1:
		node, err := parseFilter(f.filters[0], f.ignoreCase)
		if err != nil {
			return nil, err
		}
		aQuery.Where(node)
	default:
		var nodes = make([]*predicate.Node, 0, len(f.filters))
		for _, filter := range f.filters {
			node, err := parseFilter(filter, f.ignoreCase)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		aQuery.Where(predicate.And(nodes...))
	}
	for _, order := range f.orders {
		aQuery.OrderBy(parseOrder(order))
	}
	return aQuery, nil
}

// lookupDialect returns the most recent registered dialect of the product, ANSI when name is empty
func lookupDialect(name string) (*info.Dialect, error) {
	if name == "" {
		return ansi.Dialect(), nil
	}
	dialects := registry.Dialects(name)
	if len(dialects) == 0 {
		return nil, fmt.Errorf("unsupported dialect: %v", name)
	}
	return dialects[len(dialects)-1], nil
}

func loadSchema(ctx context.Context, srv *metadata.Service, cfg *Config, db *sql.DB) (*schema.Cache, error) {
	if cfg.Schema != "" {
		return srv.LoadURL(ctx, cfg.Schema)
	}
	if db == nil {
		return nil, fmt.Errorf("schema was not configured")
	}
	return srv.Load(ctx, db)
}
