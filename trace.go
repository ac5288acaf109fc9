package id3

/*
SplitEvent describes the decision taken on a node that is split: where it
is in the tree, the partition that reached it and the attribute chosen.
*/
type SplitEvent struct {
	// Depth of the node, 0 for the root.
	Depth int
	// Path holds the branch values followed from the root to the node.
	Path []string
	// Rows is the number of rows in the partition.
	Rows int
	// Entropy is the entropy of the partition.
	Entropy float64
	// Candidates holds the attributes that were available to split on,
	// and Gains the information gain of each of them.
	Candidates []string
	Gains      []float64
	// Attribute is the chosen candidate, with gain Gain.
	Attribute string
	Gain      float64
	// Values holds the branch values of the node in order.
	Values []string
}

// LeafEvent describes a leaf added to the tree.
type LeafEvent struct {
	Depth int
	Path  []string
	Rows  int
	Label string
}

/*
Tracer is an interface for observers of the growth of a tree. TraceSplit
is called once for every decision node, before its children are grown,
and TraceLeaf once for every leaf.
*/
type Tracer interface {
	TraceSplit(SplitEvent)
	TraceLeaf(LeafEvent)
}

/*
TracerFuncs wraps a pair of functions to implement the Tracer interface.
Any of them may be nil.
*/
type TracerFuncs struct {
	Split func(SplitEvent)
	Leaf  func(LeafEvent)
}

// TraceSplit calls the Split function if set.
func (tf TracerFuncs) TraceSplit(e SplitEvent) {
	if tf.Split != nil {
		tf.Split(e)
	}
}

// TraceLeaf calls the Leaf function if set.
func (tf TracerFuncs) TraceLeaf(e LeafEvent) {
	if tf.Leaf != nil {
		tf.Leaf(e)
	}
}

type nopTracer struct{}

func (nopTracer) TraceSplit(SplitEvent) {}
func (nopTracer) TraceLeaf(LeafEvent)   {}
