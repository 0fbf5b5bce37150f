// Package cmd implements accfind's CLI using https://github.com/spf13/cobra.
package cmd

import (
	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/puppetlabs/accfind/cmd/version"
	"github.com/puppetlabs/accfind/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Unfortunately, cobra.Command.Execute() can only return error objects.
// Thus, the only way for us to let each command configure its own exit
// code is to wrap that value in an error object. This should be OK since
// we want the commands to handle their own errors.
type exitCode struct {
	value int
}

// Required to implement the error interface
func (e exitCode) Error() string {
	return ""
}

// This munging's necessary to ensure that all commandMain functions return
// an exit code while also letting them be used as RunE functions that can
// be passed into Cobra. Otherwise, Go's type-checker will complain even though
// exitCode is an error object.
type commandMain func(cmd *cobra.Command, args []string) exitCode
type runE func(cmd *cobra.Command, args []string) error

func toRunE(main commandMain) runE {
	return func(cmd *cobra.Command, args []string) error {
		return main(cmd, args)
	}
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "accfind",
		Short: "Finds accessible objects in UI snapshots",
		Long: `Finds accessible objects (buttons, links, list items, ...) in snapshots of
accessibility trees. A snapshot is a YAML file that describes windows, their child
controls and their MSAA, UI-Automation and Java object trees.

Queries are made of a role or path, a name and a list of properties. See
'accfind find --help' for the query syntax.`,
		PersistentPreRunE: configure,
		// Need to set these so that Cobra will not output the usage +
		// error object when Execute() returns an error, which will always
		// happen in our case because the exitCode object is technically
		// an error.
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.BuildVersion,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultFile(), "Read the config from this file")
	rootCmd.PersistentFlags().String("loglevel", "warn", "Set the logging level (error, warn, info, debug or trace)")
	if err := viper.BindPFlag(config.LogLevelKey, rootCmd.PersistentFlags().Lookup("loglevel")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(findCommand())
	rootCmd.AddCommand(waitCommand())
	rootCmd.AddCommand(treeCommand())
	rootCmd.AddCommand(rolesCommand())
	rootCmd.AddCommand(enableCommand())

	return rootCmd
}

// configure reads the config file and sets up logging before any command runs.
func configure(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	if err := config.ReadFrom(file); err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	level, err := cmdutil.ParseLevel(viper.GetString(config.LogLevelKey))
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	log.SetLevel(level)
	log.SetOutput(cmdutil.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return nil
}

// Execute executes the root command, returning the exit code
func Execute() int {
	return execute(rootCommand())
}

func execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		// This can happen if the user invokes `accfind` without any
		// arguments, or if they invoke a help command.
		return 0
	}

	exitCode, ok := err.(exitCode)
	if !ok {
		// err is something Cobra-related, like e.g. a malformed
		// flag. Print the error, then return.
		cmdutil.ErrPrintf("Error: %v\n", err)
		return 1
	}

	return exitCode.value
}
