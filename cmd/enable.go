package cmd

import (
	"fmt"

	"github.com/puppetlabs/accfind/acc"
	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/puppetlabs/accfind/finder"
	"github.com/spf13/cobra"
)

func enableCommand() *cobra.Command {
	enableCmd := &cobra.Command{
		Use:   "enable <snapshot>",
		Short: "Enables the web page objects of a Chrome window",
		Long: `Chrome builds the accessible objects of web pages only when asked to. Enable
injects an agent into the browser process of a Chrome window and asks it to build
them, waiting up to about a second until they are ready.

Prints "already enabled", "enabled now" or "failed".`,
		Args: cobra.ExactArgs(1),
		RunE: toRunE(enableMain),
	}
	enableCmd.Flags().StringP("window", "w", "", "Enable the window with this handle or class (default: the first window)")
	enableCmd.Flags().Bool("any-class", false, "Don't check that the window's class is Chrome's")
	enableCmd.Flags().BoolP("yes", "y", false, "Inject the agent without asking")
	return enableCmd
}

func enableMain(cmd *cobra.Command, args []string) exitCode {
	snap, w, err := loadWindow(cmd, args[0])
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	anyClass, _ := cmd.Flags().GetBool("any-class")
	yes, _ := cmd.Flags().GetBool("yes")

	store := finder.NewStatusStore()
	injector := finder.InjectorFunc(func(w acc.Window) (finder.Agent, error) {
		if !yes {
			if !cmdutil.IsInteractive() {
				return nil, fmt.Errorf("cannot ask for confirmation without a terminal, use --yes")
			}
			msg := fmt.Sprintf("Inject an agent into the process of window %#x (%v)? [y/N]", w.Handle(), w.ClassName())
			confirmed, err := cmdutil.Prompt(msg, cmdutil.YesOrNoP)
			if err != nil {
				return nil, err
			}
			if !confirmed.(bool) {
				return nil, fmt.Errorf("injection declined")
			}
		}
		agent, err := snap.InjectAgent(w, store.EnableInProcess)
		if err != nil {
			return nil, err
		}
		return agent, nil
	})

	result := store.EnableChrome(w, injector, !anyClass)
	cmdutil.Println(result)
	if result == finder.EnableFailed {
		return exitCode{1}
	}
	return exitCode{0}
}
