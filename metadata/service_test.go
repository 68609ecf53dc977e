package metadata_test

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/efaps/esql/metadata"
	_ "github.com/efaps/esql/metadata/product/ansi"
	_ "github.com/efaps/esql/metadata/product/sqlite"
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/metadata/schema/schematest"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestService_Load(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.Nil(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT ID, SQLTABLE, SQLCOLUMNTYPE FROM T_DMTABLE ORDER BY ID").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "SQLTABLE", "SQLCOLUMNTYPE"}).
			AddRow(int64(1), "T_DOC", "TYPEID").
			AddRow(int64(2), "T_PERSON", nil).
			AddRow(int64(3), "T_STATUS", nil))
	mock.ExpectQuery("SELECT ID, NAME, PARENTDMTYPE, DMTABLE, CLASSLINK, CLASSIFIES FROM T_DMTYPE ORDER BY ID").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "PARENTDMTYPE", "DMTABLE", "CLASSLINK", "CLASSIFIES"}).
			AddRow(int64(100), "Document", nil, int64(1), nil, nil).
			AddRow(int64(101), "Invoice", int64(100), nil, nil, nil).
			AddRow(int64(200), "Person", nil, int64(2), nil, nil).
			AddRow(int64(400), "DocumentStatus", nil, int64(3), nil, nil))
	mock.ExpectQuery("SELECT ID, NAME, DMTYPE, DMTABLE, DMATTRIBUTETYPE, SQLCOLUMN, DMTYPELINK FROM T_DMATTRIBUTE ORDER BY DMTYPE, ID").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "DMTYPE", "DMTABLE", "DMATTRIBUTETYPE", "SQLCOLUMN", "DMTYPELINK"}).
			AddRow(int64(1), "Name", int64(100), int64(1), "string", "NAME", nil).
			AddRow(int64(2), "Creator", int64(100), int64(1), "link", "CREATOR", int64(200)).
			AddRow(int64(3), "Status", int64(100), nil, "status", "STATUSID", int64(400)).
			AddRow(int64(4), "Name", int64(200), nil, "string", "NAME", nil))
	mock.ExpectQuery("SELECT ID, DMTYPE, KEYNAME FROM T_DMSTATUS ORDER BY DMTYPE, ID").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "DMTYPE", "KEYNAME"}).
			AddRow(int64(1), int64(400), "Open").
			AddRow(int64(2), int64(400), "Closed"))

	logs := &bytes.Buffer{}
	srv := metadata.New(slog.New(slog.NewTextHandler(logs, nil)))
	cache, err := srv.Load(context.Background(), db)
	require.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
	assert.Equal(t, cache, srv.Cache())

	invoice, ok := cache.Type("Invoice")
	require.True(t, ok)
	assert.Equal(t, "T_DOC", invoice.MainTable.Name)
	assert.Equal(t, "TYPEID", invoice.MainTable.TypeColumn)
	creator, ok := invoice.Attribute("Creator")
	require.True(t, ok)
	assert.Equal(t, "Person", creator.LinkTarget)
	assert.Equal(t, schema.KindLink, creator.Kind)

	group, ok := cache.StatusGroup("DocumentStatus")
	require.True(t, ok)
	id, ok := group.Lookup("Closed")
	assert.True(t, ok)
	assert.EqualValues(t, 2, id)
	assert.Contains(t, logs.String(), "metadata loaded")
}

func TestService_Load_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.Nil(t, err)
	defer db.Close()
	mock.ExpectQuery("T_DMTABLE").WillReturnError(sql.ErrConnDone)

	srv := metadata.New()
	_, err = srv.Load(context.Background(), db)
	assert.NotNil(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Nil(t, srv.Cache())
}

func TestService_LoadURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/esql/schema.yaml"
	require.Nil(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(schematest.YAML)))

	srv := metadata.New()
	first, err := srv.LoadURL(ctx, URL)
	require.Nil(t, err)
	assert.Len(t, first.Types(), 5)

	second, err := srv.LoadURL(ctx, URL)
	require.Nil(t, err)
	assert.True(t, second == srv.Cache())
	assert.False(t, first == srv.Cache())
	_, ok := first.Type("Document")
	assert.True(t, ok, "replaced snapshot stays usable")

	_, err = srv.LoadURL(ctx, "mem://localhost/esql/missing.yaml")
	assert.NotNil(t, err)
	assert.True(t, second == srv.Cache())
}

func TestService_DetectDialect(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "detect.db"))
	require.Nil(t, err)
	defer db.Close()

	dialect, err := metadata.New().DetectDialect(context.Background(), db)
	require.Nil(t, err)
	assert.Equal(t, "SQLite", dialect.Name)
	assert.Equal(t, 3, dialect.Major)
	assert.Equal(t, `"`, dialect.IdentifierQuote)
}
