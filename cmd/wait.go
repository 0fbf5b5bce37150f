package cmd

import (
	"time"

	"github.com/avast/retry-go"
	"github.com/puppetlabs/accfind/acc"
	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/puppetlabs/accfind/config"
	"github.com/puppetlabs/accfind/finder"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func waitCommand() *cobra.Command {
	waitCmd := &cobra.Command{
		Use:   "wait <snapshot>",
		Short: "Waits until an object appears",
		Long: `Repeats the search until an object matching the query is found or the timeout
expires. Searches are repeated while nothing is found, and while a browser is still
building the objects of a web page.

` + queryUsage,
		Args: cobra.ExactArgs(1),
		RunE: toRunE(waitMain),
	}
	addQueryFlags(waitCmd)
	waitCmd.Flags().Duration("timeout", 10*time.Second, "Give up after this long")
	waitCmd.Flags().Duration("interval", 100*time.Millisecond, "Time between searches")
	for key, flag := range map[string]string{config.WaitTimeoutKey: "timeout", config.WaitIntervalKey: "interval"} {
		if err := viper.BindPFlag(key, waitCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	return waitCmd
}

func waitMain(cmd *cobra.Command, args []string) exitCode {
	q, err := parseQuery(cmd)
	if err != nil {
		cmdutil.ErrPrintf("wait: %v\n", err)
		return exitCode{exitCodeFor(err)}
	}
	_, w, err := loadWindow(cmd, args[0])
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{4}
	}

	interval := config.WaitInterval()
	attempts := uint(1)
	if interval > 0 {
		attempts += uint(config.WaitTimeout() / interval)
	}

	f := finder.New(q)
	f.Status = finder.NewStatusStore()
	var found object
	start := time.Now()
	err = retry.Do(
		func() error {
			return f.FindInWindow(w, func(o acc.Object, level int) finder.CallbackResult {
				found = describe(w, o, level)
				o.Release()
				return finder.StopFound
			})
		},
		retry.Attempts(attempts),
		retry.Delay(interval),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(func(err error) bool {
			code := finder.CodeOf(err)
			return code == finder.NotFound || code == finder.WaitRetry
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Debugf("Attempt %v: %v", n+1, err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if finder.CodeOf(err) != finder.NotFound {
			cmdutil.ErrPrintf("%v\n", err)
		}
		return exitCode{exitCodeFor(err)}
	}

	cmdutil.Print(formatObjects([]object{found}, false))
	log.Infof("Found after %v", cmdutil.FormatDuration(time.Since(start)))
	return exitCode{0}
}
