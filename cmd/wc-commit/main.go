package main

import (
	"fmt"
	"os"

	"webchan.dev/wcgit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := cli.NewCommitCmd(fmt.Sprintf("%s (commit %s, built %s)", version, commit, date))
	os.Exit(cli.Execute(cmd))
}
