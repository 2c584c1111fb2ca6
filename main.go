package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/showroom-catalog/showroom/cmd"
)

// set with -ldflags at release time
var (
	version = "dev"
	commit  = ""
)

func main() {
	opts := []fang.Option{
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	}
	if commit != "" {
		opts = append(opts, fang.WithCommit(commit))
	}

	if err := fang.Execute(context.Background(), cmd.NewRootCmd(), opts...); err != nil {
		os.Exit(1)
	}
}
