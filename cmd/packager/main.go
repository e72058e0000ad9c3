package main

import (
	"fmt"
	"os"

	"github.com/fichil/multi-repo-maven-packager/internal/cli"
	pkgerrors "github.com/fichil/multi-repo-maven-packager/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(pkgerrors.ExitCode(err))
	}
}
