package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	command := &cobra.Command{
		Use:           "sharerecovery",
		Short:         "Recover a secret from threshold shares",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(command)
	addRecoverCmd(command)
	addBatchCmd(command)
	addCliCmd(command)

	err := command.Execute()
	if err != nil {
		if _, ok := err.(reportedError); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
