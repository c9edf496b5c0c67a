package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ZanzyTHEbar/treeview/treeview/cli"

	"github.com/spf13/afero"
)

var Version = "develop"

func main() {
	os.Exit(run(context.Background(), afero.NewOsFs(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(ctx context.Context, fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCmd(Version, fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
