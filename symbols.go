package sql2cypher

import (
	"github.com/rlch/sql2cypher/dialects/cypher"
	"github.com/rlch/sql2cypher/dialects/sql"
)

// symbolTable maps table occurrences to the pattern element that introduced
// them. Entries are added while FROM is resolved and only read afterwards.
type symbolTable struct {
	elements map[*sql.TableRef]cypher.PatternElement
}

func newSymbolTable() *symbolTable {
	return &symbolTable{elements: make(map[*sql.TableRef]cypher.PatternElement)}
}

// bind registers the element for t. The first binding wins.
func (s *symbolTable) bind(t *sql.TableRef, e cypher.PatternElement) {
	if _, ok := s.elements[t]; !ok {
		s.elements[t] = e
	}
}

func (s *symbolTable) lookup(t *sql.TableRef) (cypher.PatternElement, bool) {
	e, ok := s.elements[t]
	return e, ok
}

// property returns the property access for a column of t. Unbound tables
// get a fresh node carrying the table's label.
func (s *symbolTable) property(t *sql.TableRef, column string) *cypher.Property {
	if e, ok := s.lookup(t); ok {
		switch e := e.(type) {
		case *cypher.Node:
			return e.Property(column)
		case *cypher.Relationship:
			return e.Property(column)
		}
	}

	return freshNode(t).Property(column)
}

// variable returns the symbolic name bound to t, or one derived from its
// textual name.
func (s *symbolTable) variable(t *sql.TableRef) *cypher.SymbolicName {
	if e, ok := s.lookup(t); ok {
		switch e := e.(type) {
		case *cypher.Node:
			if name := e.SymbolicName(); name != nil {
				return name
			}
		case *cypher.Relationship:
			if e.Name != "" {
				return cypher.Name(e.Name)
			}
		}
	}

	return cypher.Name(variableName(t))
}

// freshNode builds the node for a single table occurrence: labelled from
// metadata, named by alias or table name.
func freshNode(t *sql.TableRef) *cypher.Node {
	return cypher.NewNode(labelOrName(t)).Named(variableName(t))
}

func variableName(t *sql.TableRef) string {
	if t.Aliased() {
		return t.Alias
	}

	return t.Name
}

// labelOrName returns the label hint of t, falling back to its name.
func labelOrName(t *sql.TableRef) string {
	if label, ok := sql.CommentValue(t.Comment(), labelKey); ok && label != "" {
		return label
	}

	return t.Name
}
