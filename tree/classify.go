package tree

import (
	"fmt"

	"github.com/pbanos/id3/errors"
)

/*
ClassificationError is the error returned when a query holds a value for
which the tree has no branch. It wraps errors.ErrClassification.

Fallback holds the majority class of the training partition that reached
the decision node where the lookup failed, for callers that prefer
substituting it to failing.
*/
type ClassificationError struct {
	Attribute string
	Value     string
	Fallback  string
}

func (ce *ClassificationError) Error() string {
	return fmt.Sprintf("%v: no branch for value %q of attribute %q", errors.ErrClassification, ce.Value, ce.Attribute)
}

// Unwrap returns errors.ErrClassification.
func (ce *ClassificationError) Unwrap() error {
	return errors.ErrClassification
}

/*
Classify takes the root node of a tree, a query with a value for each of
the given attributes and the attribute names the tree was grown with, and
returns the class label of the leaf reached by following, from the root,
the branches matching the query values.

It returns an error wrapping errors.ErrInvalidInput if the query length
differs from the number of attributes or the root is nil, one wrapping
errors.ErrConfiguration if a decision node attribute is not among the
given ones, and a *ClassificationError if the query holds a value for
which there is no branch.
*/
func Classify(root Node, query []string, attributes []string) (string, error) {
	if root == nil {
		return "", errors.Wrap(errors.ErrInvalidInput, "nil tree cannot classify queries")
	}
	if len(query) != len(attributes) {
		return "", errors.Wrapf(errors.ErrInvalidInput, "query has %d values, expected %d", len(query), len(attributes))
	}
	n := root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label, nil
		case *Decision:
			i := indexOf(attributes, node.Attribute)
			if i < 0 {
				return "", errors.Wrapf(errors.ErrConfiguration, "attribute %q is not in the attribute list", node.Attribute)
			}
			child, ok := node.Child(query[i])
			if !ok {
				return "", &ClassificationError{Attribute: node.Attribute, Value: query[i], Fallback: node.Majority}
			}
			n = child
		default:
			return "", errors.Wrapf(errors.ErrInvalidInput, "unknown node type %T", n)
		}
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
