package metadata

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	sq "github.com/Masterminds/squirrel"
	"github.com/efaps/esql/io/read"
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/registry"
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/metadata/sink"
	"github.com/efaps/esql/option"
	"github.com/pkg/errors"
	"github.com/viant/afs"
)

const (
	tableDictionary     = "T_DMTABLE"
	typeDictionary      = "T_DMTYPE"
	attributeDictionary = "T_DMATTRIBUTE"
	statusDictionary    = "T_DMSTATUS"
)

//Service represents metadata service
type Service struct {
	cache  atomic.Pointer[schema.Cache]
	fs     afs.Service
	logger *slog.Logger
}

//Cache returns recently loaded cache or nil
func (s *Service) Cache() *schema.Cache {
	return s.cache.Load()
}

//Load reads dictionary tables and replaces current cache
func (s *Service) Load(ctx context.Context, db *sql.DB, options ...option.Option) (*schema.Cache, error) {
	doc, err := s.Document(ctx, db, options...)
	if err != nil {
		return nil, err
	}
	return s.build(doc, "db")
}

//LoadURL reads YAML schema document from URL and replaces current cache
func (s *Service) LoadURL(ctx context.Context, URL string) (*schema.Cache, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download schema: %v", URL)
	}
	doc, err := schema.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid schema: %v", URL)
	}
	return s.build(doc, URL)
}

func (s *Service) build(doc *schema.Document, source string) (*schema.Cache, error) {
	cache, err := doc.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build schema from %v", source)
	}
	s.cache.Store(cache)
	s.logger.Info("metadata loaded", "source", source, "types", len(cache.Types()), "statusGroups", cache.StatusGroups())
	return cache, nil
}

//Document reads dictionary tables into schema document
func (s *Service) Document(ctx context.Context, db *sql.DB, options ...option.Option) (*schema.Document, error) {
	var tables []*sink.Table
	var types []*sink.Type
	var attributes []*sink.Attribute
	var statuses []*sink.Status

	if err := readAll(ctx, db, sq.Select("ID", "SQLTABLE", "SQLCOLUMNTYPE").From(tableDictionary).OrderBy("ID"), func() interface{} { return &sink.Table{} }, func(row interface{}) {
		tables = append(tables, row.(*sink.Table))
	}, options); err != nil {
		return nil, err
	}
	if err := readAll(ctx, db, sq.Select("ID", "NAME", "PARENTDMTYPE", "DMTABLE", "CLASSLINK", "CLASSIFIES").From(typeDictionary).OrderBy("ID"), func() interface{} { return &sink.Type{} }, func(row interface{}) {
		types = append(types, row.(*sink.Type))
	}, options); err != nil {
		return nil, err
	}
	if err := readAll(ctx, db, sq.Select("ID", "NAME", "DMTYPE", "DMTABLE", "DMATTRIBUTETYPE", "SQLCOLUMN", "DMTYPELINK").From(attributeDictionary).OrderBy("DMTYPE", "ID"), func() interface{} { return &sink.Attribute{} }, func(row interface{}) {
		attributes = append(attributes, row.(*sink.Attribute))
	}, options); err != nil {
		return nil, err
	}
	if err := readAll(ctx, db, sq.Select("ID", "DMTYPE", "KEYNAME").From(statusDictionary).OrderBy("DMTYPE", "ID"), func() interface{} { return &sink.Status{} }, func(row interface{}) {
		statuses = append(statuses, row.(*sink.Status))
	}, options); err != nil {
		return nil, err
	}
	return newDocument(tables, types, attributes, statuses)
}

func readAll(ctx context.Context, db *sql.DB, builder sq.SelectBuilder, newRow func() interface{}, collect func(row interface{}), options []option.Option) error {
	SQL, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	reader, err := read.New(ctx, db, SQL, newRow, options...)
	if err != nil {
		return err
	}
	err = reader.QueryAll(ctx, func(row interface{}) error {
		collect(row)
		return nil
	}, args...)
	return errors.Wrapf(err, "failed to read dictionary")
}

func newDocument(tables []*sink.Table, types []*sink.Type, attributes []*sink.Attribute, statuses []*sink.Status) (*schema.Document, error) {
	doc := &schema.Document{}
	tableNames := map[int64]string{}
	for _, table := range tables {
		tableNames[table.ID] = table.Name
		doc.Tables = append(doc.Tables, &schema.TableDef{Name: table.Name, TypeColumn: table.TypeColumn})
	}
	typeNames := map[int64]string{}
	for _, aType := range types {
		typeNames[aType.ID] = aType.Name
	}
	lookup := func(names map[int64]string, id int64, kind string, owner string) (string, error) {
		if id == 0 {
			return "", nil
		}
		name, ok := names[id]
		if !ok {
			return "", errors.Errorf("%v: unknown %v id: %v", owner, kind, id)
		}
		return name, nil
	}
	defs := map[int64]*schema.TypeDef{}
	for _, aType := range types {
		def := &schema.TypeDef{ID: aType.ID, Name: aType.Name}
		var err error
		if def.Parent, err = lookup(typeNames, aType.Parent, "type", aType.Name); err != nil {
			return nil, err
		}
		if def.Table, err = lookup(tableNames, aType.Table, "table", aType.Name); err != nil {
			return nil, err
		}
		if aType.ClassLink != "" {
			def.Classification = &schema.ClassificationDef{Link: aType.ClassLink}
			if def.Classification.Classifies, err = lookup(typeNames, aType.Classifies, "type", aType.Name); err != nil {
				return nil, err
			}
		}
		defs[aType.ID] = def
		doc.Types = append(doc.Types, def)
	}
	for _, attr := range attributes {
		owner, ok := defs[attr.Type]
		if !ok {
			return nil, errors.Errorf("attribute %v: unknown type id: %v", attr.Name, attr.Type)
		}
		def := &schema.AttributeDef{ID: attr.ID, Name: attr.Name, Kind: attr.Kind}
		var err error
		if def.Table, err = lookup(tableNames, attr.Table, "table", owner.Name+"."+attr.Name); err != nil {
			return nil, err
		}
		if def.Link, err = lookup(typeNames, attr.Link, "type", owner.Name+"."+attr.Name); err != nil {
			return nil, err
		}
		for _, column := range strings.Split(attr.Columns, ",") {
			if column = strings.TrimSpace(column); column != "" {
				def.Columns = append(def.Columns, column)
			}
		}
		owner.Attributes = append(owner.Attributes, def)
	}
	for _, status := range statuses {
		group, err := lookup(typeNames, status.Type, "type", "status "+status.Key)
		if err != nil {
			return nil, err
		}
		doc.Statuses = append(doc.Statuses, &schema.StatusDef{Group: group, Key: status.Key, ID: status.ID})
	}
	sort.SliceStable(doc.Statuses, func(i, j int) bool {
		return doc.Statuses[i].Group < doc.Statuses[j].Group
	})
	return doc, nil
}

//DetectDialect matches dialect for supplied db, dialects defining version query are narrowed down by the reported version
func (s *Service) DetectDialect(ctx context.Context, db *sql.DB) (*info.Dialect, error) {
	product := registry.MatchProduct(db)
	if product == nil {
		return nil, errors.New("failed to detect product: no dialect registered")
	}
	dialect := registry.LookupDialect(product)
	if dialect == nil {
		return nil, errors.Errorf("failed to detect product: unsupported %v", product.Name)
	}
	if dialect.VersionSQL == "" {
		return dialect, nil
	}
	var banner string
	if err := db.QueryRowContext(ctx, dialect.VersionSQL).Scan(&banner); err != nil {
		return nil, errors.Wrapf(err, "failed to read %v version", product.Name)
	}
	version, err := database.Parse([]byte(banner))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %v version: %v", product.Name, banner)
	}
	if versioned := registry.LookupDialect(product.New(version.Major, version.Minor, version.Release)); versioned != nil {
		dialect = versioned
	}
	s.logger.Debug("dialect detected", "product", dialect.Name, "major", version.Major, "minor", version.Minor)
	return dialect, nil
}

//New creates metadata service
func New(options ...option.Option) *Service {
	return &Service{fs: afs.New(), logger: option.Options(options).Logger()}
}
