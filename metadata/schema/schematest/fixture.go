// Package schematest provides a shared document management schema for tests
package schematest

import "github.com/efaps/esql/metadata/schema"

// YAML defines documents, invoices, persons, a document classification and document statuses
const YAML = `tables:
  - name: T_DOC
    typeColumn: TYPEID
  - name: T_DOCDETAIL
  - name: T_PERSON
  - name: T_DOCCLS
  - name: T_STATUS
types:
  - id: 100
    name: Document
    table: T_DOC
    attributes:
      - name: Type
        kind: type
        columns: [TYPEID]
      - name: Name
        kind: string
      - name: Status
        kind: status
        columns: [STATUSID]
        link: DocumentStatus
      - name: Creator
        kind: link
        link: Person
      - name: Modifier
        kind: link
        link: Person
      - name: Description
        kind: string
        table: T_DOCDETAIL
      - name: Amount
        kind: decimal
      - name: Created
        kind: datetime
  - id: 101
    name: Invoice
    parent: Document
    attributes:
      - name: Due
        kind: date
        columns: [DUEDATE]
  - id: 200
    name: Person
    table: T_PERSON
    attributes:
      - name: Name
        kind: string
      - name: Active
        kind: boolean
      - name: Manager
        kind: link
        link: Person
  - id: 300
    name: Document_Class
    table: T_DOCCLS
    classification:
      link: DocLink
      classifies: Document
    attributes:
      - name: DocLink
        kind: link
        link: Document
      - name: Priority
        kind: integer
  - id: 400
    name: DocumentStatus
    table: T_STATUS
    attributes:
      - name: Key
        kind: string
        columns: [KEYNAME]
statuses:
  - group: DocumentStatus
    key: Open
    id: 1
  - group: DocumentStatus
    key: Closed
    id: 2
  - group: DocumentStatus
    key: Canceled
    id: 3
`

// Cache returns cache built from YAML, it panics on invalid fixture
func Cache() *schema.Cache {
	doc, err := schema.Decode([]byte(YAML))
	if err != nil {
		panic(err)
	}
	cache, err := doc.Build()
	if err != nil {
		panic(err)
	}
	return cache
}
