package main

import (
	"fmt"

	"github.com/pbanos/id3/tree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a classification tree from a set of labeled data and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.validateTrainingFlags()
			if err != nil {
				exit(1, err)
			}
			ds, _, err := rootConfig.dataset(cmd.Context())
			if err != nil {
				exit(2, err)
			}
			t, err := rootConfig.grow(ds)
			if err != nil {
				exit(3, err)
			}
			if rootConfig.v.GetBool("pretty") {
				err = pterm.DefaultTree.WithRoot(prettyTree(t)).Render()
				if err != nil {
					exit(4, err)
				}
				return
			}
			fmt.Print(t)
		},
	}
	addTrainingFlags(cmd)
	cmd.Flags().Bool("pretty", false, "draw the tree with box-drawing characters")
	return cmd
}

// prettyTree returns the tree as pterm nodes, with a node for every branch holding its subtree.
func prettyTree(t *tree.Tree) pterm.TreeNode {
	return prettyNode(t.Root)
}

func prettyNode(n tree.Node) pterm.TreeNode {
	switch n := n.(type) {
	case *tree.Leaf:
		return pterm.TreeNode{Text: pterm.Green(n.Label)}
	case *tree.Decision:
		node := pterm.TreeNode{Text: pterm.Bold.Sprint(n.Attribute)}
		for _, b := range n.Branches {
			node.Children = append(node.Children, pterm.TreeNode{
				Text:     fmt.Sprintf("%s = %s", n.Attribute, b.Value),
				Children: []pterm.TreeNode{prettyNode(b.Node)},
			})
		}
		return node
	}
	return pterm.TreeNode{}
}
