package tree

/*
Node is a node of a decision tree. It is either a *Leaf holding a class
label or a *Decision splitting on an attribute, with a child node for
each value of the attribute seen during training.

Nodes are never modified once built, so a tree can be shared by
concurrent readers.
*/
type Node interface {
	isNode()
}

// Leaf is a node holding the class label predicted for the samples reaching it.
type Leaf struct {
	Label string
}

/*
Branch is the edge from a decision node to one of its children,
labelled with the value of the decision node attribute that leads to it.
*/
type Branch struct {
	Value string
	Node  Node
}

/*
Decision is a node that sends samples to one of its children according
to their value for Attribute. Branches are kept in the order their values
were first found in the training partition that reached the node.
Majority is the majority class of that partition.
*/
type Decision struct {
	Attribute string
	Majority  string
	Branches  []Branch
	index     map[string]int
}

func (*Leaf) isNode()     {}
func (*Decision) isNode() {}

// NewLeaf takes a class label and returns a leaf predicting it.
func NewLeaf(label string) *Leaf {
	return &Leaf{Label: label}
}

/*
NewDecision takes an attribute name, the majority class of the partition
that reached the node and its branches and returns a decision node. If
several branches share a value only the first one is reachable.
*/
func NewDecision(attribute, majority string, branches []Branch) *Decision {
	d := &Decision{
		Attribute: attribute,
		Majority:  majority,
		Branches:  branches,
		index:     make(map[string]int, len(branches)),
	}
	for i, b := range branches {
		if _, ok := d.index[b.Value]; !ok {
			d.index[b.Value] = i
		}
	}
	return d
}

/*
Child takes a value for the node's attribute and returns the node under
the branch for that value and true, or nil and false if there is no such
branch.
*/
func (d *Decision) Child(value string) (Node, bool) {
	if d.index == nil {
		for _, b := range d.Branches {
			if b.Value == value {
				return b.Node, true
			}
		}
		return nil, false
	}
	i, ok := d.index[value]
	if !ok {
		return nil, false
	}
	return d.Branches[i].Node, true
}

// Values returns the values of the node's branches in order.
func (d *Decision) Values() []string {
	values := make([]string, 0, len(d.Branches))
	for _, b := range d.Branches {
		values = append(values, b.Value)
	}
	return values
}

// IsLeaf returns whether the given node is a leaf.
func IsLeaf(n Node) bool {
	_, ok := n.(*Leaf)
	return ok
}
