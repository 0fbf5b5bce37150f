package cmd

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/puppetlabs/accfind/acc"
	cmdutil "github.com/puppetlabs/accfind/cmd/util"
	"github.com/puppetlabs/accfind/config"
	"github.com/puppetlabs/accfind/finder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func findCommand() *cobra.Command {
	findCmd := &cobra.Command{
		Use:   "find <snapshot>...",
		Short: "Finds accessible objects in snapshots",
		Long: `Searches a window of each snapshot for objects that match the query and prints
the first one found, or all of them with --all. Snapshots are searched in parallel.

The exit status is 0 if an object was found, 1 if none was found, 2 if the query is
invalid, 3 if the web page is not ready yet (try again or use 'accfind wait') and
4 for other errors.

` + queryUsage,
		Args: cobra.MinimumNArgs(1),
		RunE: toRunE(findMain),
	}
	addQueryFlags(findCmd)
	findCmd.Flags().BoolP("all", "a", false, "Print all matching objects instead of the first")
	findCmd.Flags().StringP("output", "o", "text", "Set the output format (text, json or yaml)")
	findCmd.Flags().Bool("stats", false, "Print how many objects were searched")
	findCmd.Flags().IntP("parallel", "p", 4, "Number of snapshots to search in parallel")
	if err := viper.BindPFlag(config.ParallelKey, findCmd.Flags().Lookup("parallel")); err != nil {
		panic(err)
	}
	return findCmd
}

// searchResult is the outcome of searching one snapshot.
type searchResult struct {
	file    string
	objects []object
	stats   finder.Stats
	err     error
}

func findMain(cmd *cobra.Command, args []string) exitCode {
	q, err := parseQuery(cmd)
	if err != nil {
		cmdutil.ErrPrintf("find: %v\n", err)
		return exitCode{exitCodeFor(err)}
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	stats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	marshaller, err := cmdutil.NewMarshaller(output)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	results := make([]searchResult, len(args))
	pool := cmdutil.NewPool(config.Parallel())
	for i, file := range args {
		i, file := i, file
		pool.Submit(func() {
			results[i] = search(cmd, file, q, all)
		})
	}
	pool.Finish()

	var objects []object
	exit := 0
	for _, r := range results {
		if len(r.objects) == 0 && finder.CodeOf(r.err) != finder.NotFound {
			cmdutil.ErrPrintf("%v: %v\n", r.file, r.err)
			if code := exitCodeFor(r.err); code > exit {
				exit = code
			}
		}
		if len(args) > 1 {
			for i := range r.objects {
				r.objects[i].Snapshot = r.file
			}
		}
		objects = append(objects, r.objects...)
		if stats {
			cmdutil.Printf("%v: searched %v objects, %v levels deep\n",
				r.file, humanize.Comma(int64(r.stats.Visited)), r.stats.MaxLevel)
		}
	}

	if exit == 0 && len(objects) == 0 {
		exit = exitCodeFor(finder.ErrNotFound)
	}

	if marshaller != nil {
		if objects == nil {
			objects = []object{}
		}
		if err := marshaller.Print(objects); err != nil {
			cmdutil.ErrPrintf("%v\n", err)
			return exitCode{1}
		}
	} else if len(objects) > 0 {
		cmdutil.Print(formatObjects(objects, len(args) > 1))
	}
	return exitCode{exit}
}

// search searches one snapshot file. It is safe to call concurrently.
func search(cmd *cobra.Command, file string, q *finder.Query, all bool) searchResult {
	r := searchResult{file: file}
	_, w, err := loadWindow(cmd, file)
	if err != nil {
		r.err = err
		return r
	}

	f := finder.New(q)
	// Snapshots can reuse window handles
	f.Status = finder.NewStatusStore()
	r.err = f.FindInWindow(w, func(o acc.Object, level int) finder.CallbackResult {
		r.objects = append(r.objects, describe(w, o, level))
		if all {
			return finder.Continue
		}
		o.Release()
		return finder.StopFound
	})
	r.stats = f.Stats
	return r
}

func formatObjects(objects []object, withSnapshot bool) string {
	headers := []cmdutil.ColumnHeader{
		{ShortName: "window", FullName: "WINDOW"},
		{ShortName: "level", FullName: "LEVEL"},
		{ShortName: "role", FullName: "ROLE"},
		{ShortName: "name", FullName: "NAME"},
		{ShortName: "state", FullName: "STATE"},
		{ShortName: "rect", FullName: "RECT"},
	}
	if withSnapshot {
		headers = append([]cmdutil.ColumnHeader{{ShortName: "snapshot", FullName: "SNAPSHOT"}}, headers...)
	}
	rows := make([][]string, len(objects))
	for i, o := range objects {
		rows[i] = []string{o.Window, strconv.Itoa(o.Level), o.Role, o.Name, o.stateString(), o.rectString()}
		if withSnapshot {
			rows[i] = append([]string{o.Snapshot}, rows[i]...)
		}
	}
	return cmdutil.FormatTable(headers, rows)
}
