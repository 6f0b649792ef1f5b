package main

import (
	"io"
	"os"

	"github.com/jacoelho/jdom/internal/cli"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, exitResult := cli.Parse(args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	if exitResult := cli.Run(cfg, stdin, stdout); exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	return 0
}
