package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amannocci/scripty/internal/cli"
	scriptyerrors "github.com/amannocci/scripty/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Operations that already logged their failure resolve into an
		// ExitStatusError; only bare errors (usage mistakes, cobra errors)
		// still need printing here.
		var exitErr *scriptyerrors.ExitStatusError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Status)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
