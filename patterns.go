package sql2cypher

import (
	"github.com/rlch/sql2cypher/dialects/cypher"
	"github.com/rlch/sql2cypher/dialects/sql"
)

// resolve turns a FROM entry into a pattern element and binds every table
// occurrence it contains in the symbol table.
func (t *translation) resolve(table sql.Table) (cypher.PatternElement, error) {
	switch table := table.(type) {
	case *sql.TableRef:
		return t.resolveNode(table), nil
	case *sql.Join:
		return t.resolveJoin(table)
	default:
		return nil, t.unsupported(ErrUnsupportedJoin, table)
	}
}

// resolveNode returns the node for a single table occurrence. An alias
// becomes the variable; otherwise the table name does.
func (t *translation) resolveNode(ref *sql.TableRef) *cypher.Node {
	if e, ok := t.symbols.lookup(ref); ok {
		if n, ok := e.(*cypher.Node); ok {
			return n
		}
	}

	node := freshNode(ref)
	t.symbols.bind(ref, node)

	return node
}

// resolveJoin turns a join on a.x = b.y into a relationship between the left
// pattern and the node of the right table.
//
// When the left side is itself a join, its right table is the relationship:
// it provides the type through its label and the variable through its alias,
// and the pattern continues from that join's left side.
func (t *translation) resolveJoin(j *sql.Join) (cypher.PatternElement, error) {
	if j.Kind == sql.JoinCross || j.Kind == sql.JoinNatural || len(j.Using) > 0 {
		return nil, t.unsupported(ErrUnsupportedJoin, j)
	}

	on, ok := j.On.(*sql.Compare)
	if !ok || on.Op != sql.OpEq {
		return nil, t.unsupported(ErrUnsupportedJoin, j)
	}

	rightColumn, ok := on.Right.(*sql.TableField)
	if !ok {
		return nil, t.unsupported(ErrUnsupportedJoin, j)
	}

	var (
		left    cypher.PatternElement
		relType string
		relName string
		relRef  *sql.TableRef
		err     error
	)

	if inner, ok := j.Left.(*sql.Join); ok {
		relRef, ok = inner.Right.(*sql.TableRef)
		if !ok {
			return nil, t.unsupported(ErrUnsupportedJoin, j)
		}

		if left, err = t.resolve(inner.Left); err != nil {
			return nil, err
		}

		relType = labelOrName(relRef)
		relName = relRef.Alias
	} else {
		if left, err = t.resolve(j.Left); err != nil {
			return nil, err
		}

		relType = relationshipType(rightColumn)
	}

	rightRef, ok := j.Right.(*sql.TableRef)
	if !ok {
		return nil, t.unsupported(ErrUnsupportedJoin, j)
	}

	from, ok := left.(cypher.ExposesRelationships)
	if !ok {
		return nil, t.unsupported(ErrUnsupportedJoin, j)
	}

	to := t.resolveNode(rightRef)

	direction := cypher.LTR
	if rightRef.Aliased() && rightColumn.Table == rightRef {
		direction = cypher.RTL
	}

	rel := from.RelationshipWith(to, direction, relType)
	if relName != "" {
		rel = rel.Named(relName)
	}

	if relRef != nil && relName != "" {
		t.symbols.bind(relRef, lastRelationship(rel))
	}

	return rel, nil
}

// relationshipType is the type hint of the join column, or its upper-cased
// name.
func relationshipType(column *sql.TableField) string {
	if c := column.Column(); c != nil {
		if typ, ok := sql.CommentValue(c.Comment, typeKey); ok && typ != "" {
			return typ
		}
	}

	return sql.Upper(column.Name)
}

func lastRelationship(p cypher.RelationshipPattern) *cypher.Relationship {
	switch p := p.(type) {
	case *cypher.Relationship:
		return p
	case *cypher.RelationshipChain:
		return p.Relationships[len(p.Relationships)-1]
	}

	return nil
}
