package cmd

import (
	"runtime"

	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/puppetlabs/accfind/cmd/version"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints accfind's version",
		Long: `Prints the version accfind was built as. With --output json or yaml it also prints
the Go version and platform of the build.`,
		Args: cobra.NoArgs,
		RunE: toRunE(versionMain),
	}
	versionCmd.Flags().StringP("output", "o", cmdutil.Text, "Set the output format (text, json or yaml)")
	return versionCmd
}

type buildInfo struct {
	Version  string `json:"version"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func versionMain(cmd *cobra.Command, args []string) exitCode {
	output, _ := cmd.Flags().GetString("output")
	marshaller, err := cmdutil.NewMarshaller(output)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	if marshaller == nil {
		cmdutil.Println(version.BuildVersion)
		return exitCode{0}
	}
	info := buildInfo{
		Version:  version.BuildVersion,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if err := marshaller.Print(info); err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	return exitCode{0}
}
