/*
Package id3 grows classification decision trees from tables of labeled
examples with string values, choosing the attribute to split each node on
by information gain.
*/
package id3

import (
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/errors"
	"github.com/pbanos/id3/tree"
)

// Option configures the growth of a tree.
type Option func(*pot)

/*
WithMaxDepth takes a maximum depth and returns an Option that turns every
node at that depth into a leaf with the majority class of its partition.
With a depth of 1 only the root is split. A depth of 0 or less sets no
limit, the default.
*/
func WithMaxDepth(depth int) Option {
	return func(p *pot) {
		p.maxDepth = depth
	}
}

// WithTracer takes a Tracer and returns an Option that reports the growth to it.
func WithTracer(t Tracer) Option {
	return func(p *pot) {
		if t != nil {
			p.tracer = t
		}
	}
}

type pot struct {
	maxDepth int
	tracer   Tracer
}

/*
Grow takes a table of training rows, the names of the attributes their
leading fields hold and a set of options, and returns the decision tree
grown from the rows. Each row must have len(attributes)+1 fields, the last
one being its class label.

Every node with attributes left is split on the attribute selected by
SelectAttribute, with a branch for every value of it found on the
partition that reached the node, even if all rows in that partition share
a class. Nodes without attributes left become leaves with the majority
class of their partition. The recursion is thus at most len(attributes)
levels deep.

The given table and attribute slice are not modified. Grow returns an
error wrapping errors.ErrInvalidInput if the table is empty or a row does
not have the expected number of fields, or errors.ErrConfiguration if an
attribute name is repeated.
*/
func Grow(table dataset.Table, attributes []string, opts ...Option) (*tree.Tree, error) {
	p := &pot{tracer: nopTracer{}}
	for _, opt := range opts {
		opt(p)
	}
	if err := checkAttributes(attributes); err != nil {
		return nil, err
	}
	if err := table.Validate(len(attributes) + 1); err != nil {
		return nil, err
	}
	root := p.generate(table, append([]string(nil), attributes...), 0, nil)
	return tree.New(root, attributes, ""), nil
}

/*
GrowDataset takes a dataset and a set of options and returns the tree
grown from its table and attributes, predicting its class.
*/
func GrowDataset(ds *dataset.Dataset, opts ...Option) (*tree.Tree, error) {
	t, err := Grow(ds.Table, ds.Attributes, opts...)
	if err != nil {
		return nil, err
	}
	t.Class = ds.Class
	return t, nil
}

func (p *pot) generate(partition dataset.Table, attributes []string, depth int, path []string) tree.Node {
	if len(attributes) == 0 || (p.maxDepth > 0 && depth >= p.maxDepth) {
		label := MajorityClass(partition)
		p.tracer.TraceLeaf(LeafEvent{Depth: depth, Path: path, Rows: len(partition), Label: label})
		return tree.NewLeaf(label)
	}
	gains := Gains(partition, len(attributes))
	selected := selectIndex(gains)
	parts := partition.Partition(selected)
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		values = append(values, part.Value)
	}
	p.tracer.TraceSplit(SplitEvent{
		Depth:      depth,
		Path:       path,
		Rows:       len(partition),
		Entropy:    Entropy(partition),
		Candidates: attributes,
		Gains:      gains,
		Attribute:  attributes[selected],
		Gain:       gains[selected],
		Values:     values,
	})
	remaining := make([]string, 0, len(attributes)-1)
	remaining = append(remaining, attributes[:selected]...)
	remaining = append(remaining, attributes[selected+1:]...)
	branches := make([]tree.Branch, 0, len(parts))
	for _, part := range parts {
		subpath := append(append(make([]string, 0, len(path)+1), path...), part.Value)
		branches = append(branches, tree.Branch{
			Value: part.Value,
			Node:  p.generate(part.Table, remaining, depth+1, subpath),
		})
	}
	return tree.NewDecision(attributes[selected], MajorityClass(partition), branches)
}

func checkAttributes(attributes []string) error {
	seen := make(map[string]bool, len(attributes))
	for _, a := range attributes {
		if seen[a] {
			return errors.Wrapf(errors.ErrConfiguration, "duplicate attribute name %q", a)
		}
		seen[a] = true
	}
	return nil
}
