package sql

import (
	"slices"
	"strings"
)

// Meta is a static schema the parser consults when it resolves names.
// Tables are keyed by their exact (already folded) name.
type Meta struct {
	tables map[string]*TableMeta
	order  []string
}

// TableMeta describes a table: its comment and the comments of its columns.
type TableMeta struct {
	Name    string
	Comment string

	columns []*ColumnMeta
}

// ColumnMeta describes a column and its comment.
type ColumnMeta struct {
	Name    string
	Comment string
}

// TableBuilder builds a TableMeta in the style of a CREATE TABLE statement.
type TableBuilder struct {
	table *TableMeta
}

// CreateTable starts the definition of a table.
func CreateTable(name string) *TableBuilder {
	return &TableBuilder{table: &TableMeta{Name: name}}
}

// Column adds a column with a comment. Adding an existing column replaces its
// comment.
func (b *TableBuilder) Column(name, comment string) *TableBuilder {
	if c := b.table.Column(name); c != nil {
		c.Comment = comment
		return b
	}

	b.table.columns = append(b.table.columns, &ColumnMeta{Name: name, Comment: comment})

	return b
}

// Comment sets the table comment.
func (b *TableBuilder) Comment(comment string) *TableBuilder {
	b.table.Comment = comment
	return b
}

// Table returns the table definition.
func (b *TableBuilder) Table() *TableMeta {
	return b.table
}

// NewMeta returns a schema holding the given table definitions. A later
// definition of the same table replaces an earlier one.
func NewMeta(tables ...*TableBuilder) *Meta {
	m := &Meta{tables: make(map[string]*TableMeta, len(tables))}
	for _, t := range tables {
		if _, ok := m.tables[t.table.Name]; !ok {
			m.order = append(m.order, t.table.Name)
		}

		m.tables[t.table.Name] = t.table
	}

	return m
}

// Table returns the table with the given name, or nil.
func (m *Meta) Table(name string) *TableMeta {
	if m == nil {
		return nil
	}

	return m.tables[name]
}

// Tables returns all tables in definition order.
func (m *Meta) Tables() []*TableMeta {
	if m == nil {
		return nil
	}

	tables := make([]*TableMeta, 0, len(m.order))
	for _, name := range m.order {
		tables = append(tables, m.tables[name])
	}

	return tables
}

// Column returns the column with the given name, or nil.
func (t *TableMeta) Column(name string) *ColumnMeta {
	if t == nil {
		return nil
	}

	i := slices.IndexFunc(t.columns, func(c *ColumnMeta) bool { return c.Name == name })
	if i < 0 {
		return nil
	}

	return t.columns[i]
}

// Columns returns the columns in definition order.
func (t *TableMeta) Columns() []*ColumnMeta {
	if t == nil {
		return nil
	}

	return slices.Clone(t.columns)
}

// ParseComment reads a comment of the form "key=value,key=value".
// Segments without a "=" are ignored.
func ParseComment(comment string) map[string]string {
	values := make(map[string]string)

	for _, segment := range strings.Split(comment, ",") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		values[key] = strings.TrimSpace(value)
	}

	return values
}

// CommentValue returns the value of key in a "key=value,..." comment.
func CommentValue(comment, key string) (string, bool) {
	if strings.TrimSpace(comment) == "" {
		return "", false
	}

	value, ok := ParseComment(comment)[key]

	return value, ok
}
