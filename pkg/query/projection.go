// Package query builds parameterized PostgreSQL queries from projection maps.
// View names (Go field names) are translated to qualified columns so handlers
// can accept sort and filter fields without exposing raw SQL.
package query

import "strings"

// ProjectionMap maps view field names to table-qualified columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	lookup  map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		lookup: make(map[string]string),
	}
}

// Project registers column under viewName. Columns keep registration order.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns = append(p.columns, qualified)
	p.lookup[viewName] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the FROM target, e.g. "public.templates t".
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column resolves a view name. Unknown names are returned unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.lookup[viewName]; ok {
		return col
	}
	return viewName
}

// Has reports whether viewName is a projected field.
func (p *ProjectionMap) Has(viewName string) bool {
	_, ok := p.lookup[viewName]
	return ok
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns the select list as a slice.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, len(p.columns))
	copy(list, p.columns)
	return list
}
