/*
Package tree provides decision trees, the way to classify queries with
them and to go through their nodes.
*/
package tree

import (
	"fmt"
	"strings"
)

/*
Tree is a grown decision tree: its root node, the names of the
attributes it was grown with, in the positional order queries must
follow, and the name of the class it predicts.
*/
type Tree struct {
	Root       Node
	Attributes []string
	Class      string
}

/*
New takes a root node, a slice of attribute names and a class name and
returns a tree. The tree keeps its own copy of the attribute names.
*/
func New(root Node, attributes []string, class string) *Tree {
	return &Tree{root, append([]string(nil), attributes...), class}
}

/*
Classify takes a query with a value for each of the tree attributes, in
order, and returns the class label predicted for it by the tree or an
error as described for the Classify function.
*/
func (t *Tree) Classify(query []string) (string, error) {
	if t == nil {
		return Classify(nil, query, nil)
	}
	return Classify(t.Root, query, t.Attributes)
}

/*
Visit holds a node reached while traversing a tree, its depth (0 for the
root) and the path of branch values followed from the root to reach it.
*/
type Visit struct {
	Node  Node
	Depth int
	Path  []string
}

/*
Traverse takes a bottomup boolean and an error-returning function and goes
through the tree calling the function for every node. The function is
called with a parent node before its children if bottomup is false, and
after them if bottomup is true. Children are visited in branch order.
If the function returns an error the traversing is aborted and the error
returned.
*/
func (t *Tree) Traverse(bottomup bool, f func(Visit) error) error {
	if t == nil || t.Root == nil {
		return nil
	}
	return traverse(Visit{Node: t.Root}, bottomup, f)
}

func traverse(v Visit, bottomup bool, f func(Visit) error) error {
	if !bottomup {
		if err := f(v); err != nil {
			return err
		}
	}
	if d, ok := v.Node.(*Decision); ok {
		for _, b := range d.Branches {
			path := append(append(make([]string, 0, len(v.Path)+1), v.Path...), b.Value)
			if err := traverse(Visit{Node: b.Node, Depth: v.Depth + 1, Path: path}, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(v)
	}
	return nil
}

// Depth returns the number of edges on the longest path from the root to a leaf.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(v Visit) error {
		if v.Depth > depth {
			depth = v.Depth
		}
		return nil
	})
	return depth
}

// Leaves returns the number of leaves of the tree.
func (t *Tree) Leaves() int {
	var count int
	t.Traverse(false, func(v Visit) error {
		if IsLeaf(v.Node) {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	return subtreeString(t.Root)
}

func nodeString(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("{ %s }", n.Label)
	case *Decision:
		return fmt.Sprintf("[ %s ]", n.Attribute)
	}
	return fmt.Sprintf("%v", n)
}

func subtreeString(n Node) string {
	result := fmt.Sprintf("%s\n", nodeString(n))
	d, ok := n.(*Decision)
	if !ok {
		return result
	}
	result = fmt.Sprintf("%s|\n", result)
	for i, b := range d.Branches {
		lines := strings.Split(fmt.Sprintf("%s = %s\n%s", d.Attribute, b.Value, subtreeString(b.Node)), "\n")
		for j, line := range lines {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(d.Branches)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
