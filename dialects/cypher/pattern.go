package cypher

// PatternElement is a node, a relationship or a chain of relationships.
type PatternElement interface {
	patternElement()
}

// ExposesRelationships is a pattern element that a relationship can start
// from.
type ExposesRelationships interface {
	PatternElement
	RelationshipWith(to *Node, dir RelationshipDirection, types ...string) RelationshipPattern
}

// RelationshipPattern is a Relationship or a RelationshipChain.
type RelationshipPattern interface {
	ExposesRelationships
	Named(name string) RelationshipPattern
}

// RelationshipDirection is the direction of a relationship pattern.
type RelationshipDirection int

// Relationship directions.
const (
	LTR RelationshipDirection = iota
	RTL
	Uni
)

// Node is a node pattern (name:Label {props}).
type Node struct {
	Name       string
	Labels     []string
	Properties *MapLiteral
}

// NewNode returns an unnamed node with the given labels.
func NewNode(labels ...string) *Node {
	return &Node{Labels: labels}
}

// Named returns a copy of the node bound to name.
func (n *Node) Named(name string) *Node {
	out := *n
	out.Name = name

	return &out
}

// WithProperties returns a copy of the node with the given properties.
func (n *Node) WithProperties(props *MapLiteral) *Node {
	out := *n
	out.Properties = props

	return &out
}

// SymbolicName returns the node's variable, or nil for an unnamed node.
func (n *Node) SymbolicName() *SymbolicName {
	if n.Name == "" {
		return nil
	}

	return Name(n.Name)
}

// Property returns n.name.
func (n *Node) Property(name string) *Property {
	return &Property{Container: Name(n.Name), Name: name}
}

// RelationshipWith starts a relationship from n to the given node.
func (n *Node) RelationshipWith(to *Node, dir RelationshipDirection, types ...string) RelationshipPattern {
	return &Relationship{Left: n, Right: to, Direction: dir, Types: types}
}

// Relationship is (left)-[name:TYPE]->(right).
type Relationship struct {
	Left      *Node
	Right     *Node
	Direction RelationshipDirection
	Types     []string
	Name      string
}

// Named returns a copy of the relationship bound to name.
func (r *Relationship) Named(name string) RelationshipPattern {
	out := *r
	out.Name = name

	return &out
}

// Property returns r.name.
func (r *Relationship) Property(name string) *Property {
	return &Property{Container: Name(r.Name), Name: name}
}

// RelationshipWith continues the pattern from the right node of r.
func (r *Relationship) RelationshipWith(to *Node, dir RelationshipDirection, types ...string) RelationshipPattern {
	next := &Relationship{Left: r.Right, Right: to, Direction: dir, Types: types}
	return &RelationshipChain{Relationships: []*Relationship{r, next}}
}

// RelationshipChain is a path of relationships sharing their inner nodes.
type RelationshipChain struct {
	Relationships []*Relationship
}

// Named names the last relationship of the chain.
func (c *RelationshipChain) Named(name string) RelationshipPattern {
	rels := make([]*Relationship, len(c.Relationships))
	copy(rels, c.Relationships)

	last := *rels[len(rels)-1]
	last.Name = name
	rels[len(rels)-1] = &last

	return &RelationshipChain{Relationships: rels}
}

// RelationshipWith continues the chain from its last node.
func (c *RelationshipChain) RelationshipWith(to *Node, dir RelationshipDirection, types ...string) RelationshipPattern {
	last := c.Relationships[len(c.Relationships)-1]

	rels := make([]*Relationship, len(c.Relationships), len(c.Relationships)+1)
	copy(rels, c.Relationships)
	rels = append(rels, &Relationship{Left: last.Right, Right: to, Direction: dir, Types: types})

	return &RelationshipChain{Relationships: rels}
}

func (*Node) patternElement()              {}
func (*Relationship) patternElement()      {}
func (*RelationshipChain) patternElement() {}
