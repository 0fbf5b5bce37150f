package cmd

import (
	"fmt"
	"strings"

	"github.com/puppetlabs/accfind/acc"
	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func treeCommand() *cobra.Command {
	treeCmd := &cobra.Command{
		Use:   "tree <snapshot>",
		Short: "Displays a window's accessible object tree",
		Long: `Displays the accessible object tree of a window, one object per line with its
role, name and state. Sub-elements are marked with their index as "#N".`,
		Args: cobra.ExactArgs(1),
		RunE: toRunE(treeMain),
	}
	treeCmd.Flags().StringP("window", "w", "", "Display the window with this handle or class (default: the first window)")
	treeCmd.Flags().Bool("uia", false, "Display the UI-Automation tree")
	treeCmd.Flags().Bool("java", false, "Display the Java Access Bridge tree")
	treeCmd.Flags().IntP("depth", "d", -1, "Maximum depth to display (default: unlimited)")
	return treeCmd
}

func treeMain(cmd *cobra.Command, args []string) exitCode {
	_, w, err := loadWindow(cmd, args[0])
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	uia, _ := cmd.Flags().GetBool("uia")
	java, _ := cmd.Flags().GetBool("java")
	depth, _ := cmd.Flags().GetInt("depth")

	var root acc.Object
	switch {
	case uia:
		root, err = w.UIA()
	case java:
		if root, err = w.Java(); err == nil && root == nil {
			err = fmt.Errorf("window %#x is not a Java window", w.Handle())
		}
	default:
		root, err = w.Object(acc.ObjectWindow)
	}
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	defer root.Release()

	tree := treeprint.New()
	fillTree(tree, root, depth)
	cmdutil.Print(tree.String())
	return exitCode{0}
}

// fillTree adds o and its descendants, down to depth levels, to tree.
func fillTree(tree treeprint.Tree, o acc.Object, depth int) {
	tree.SetValue(label(o))
	if depth == 0 {
		return
	}
	count, err := o.ChildCount()
	if err != nil {
		log.Debugf("Could not get child count: %v", err)
		return
	}
	for i := 0; i < count; i++ {
		child, err := o.Child(i)
		if err != nil {
			tree.AddNode(fmt.Sprintf("<%v>", err))
			continue
		}
		// treeprint.Tree has no "AddBranch()" method, so we need to
		// set a stub value. Note that the value will be reset to the
		// correct value in the recursive call, so this is OK.
		fillTree(tree.AddBranch("foo"), child, depth-1)
		child.Release()
	}
}

func label(o acc.Object) string {
	var b strings.Builder
	_, role, err := acc.RoleOf(o)
	if err != nil {
		role = "?"
	}
	b.WriteString(role)
	if elem := o.Elem(); elem != 0 {
		fmt.Fprintf(&b, " #%v", elem)
	}
	if name, err := o.Property(acc.PropName); err == nil && name != "" {
		fmt.Fprintf(&b, " %q", name)
	}
	if state, err := o.State(); err == nil && state != 0 {
		fmt.Fprintf(&b, " [%v]", state)
	}
	return b.String()
}
