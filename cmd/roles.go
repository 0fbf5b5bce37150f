package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/table"
	"github.com/puppetlabs/accfind/acc"
	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/spf13/cobra"
)

func rolesCommand() *cobra.Command {
	rolesCmd := &cobra.Command{
		Use:   "roles",
		Short: "Lists the role and state names used in queries",
		Args:  cobra.NoArgs,
		RunE:  toRunE(rolesMain),
	}
	rolesCmd.Flags().Bool("states", false, "List the state names instead")
	return rolesCmd
}

func rolesMain(cmd *cobra.Command, args []string) exitCode {
	states, err := cmd.Flags().GetBool("states")
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if states {
		t.AppendHeader(table.Row{"State", "Flag"})
		for _, s := range acc.StateFlags() {
			t.AppendRow(table.Row{s.String(), fmt.Sprintf("0x%X", int(s))})
		}
	} else {
		t.AppendHeader(table.Row{"Role", "Code"})
		for _, r := range acc.Roles() {
			t.AppendRow(table.Row{r.String(), int(r)})
		}
	}
	cmdutil.Println(t.Render())
	return exitCode{0}
}
