package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"go.dedis.ch/sharerecovery/peer"
	"go.dedis.ch/sharerecovery/peer/impl"
	"golang.org/x/xerrors"
)

// errExit ends the interactive loop.
var errExit = xerrors.New("exit")

// -----------------------------------------------------------------------------
// Recoverer CMD Prompt

var prompt = &survey.Select{
	Message: "What do you want to do ?",
	Options: actionOpts,
}

// -----------------------------------------------------------------------------
// Start CMD

// StartCMD runs the interactive menu until the user exits.
func StartCMD(conf peer.Configuration) {
	node := impl.NewRecoverer(conf)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("bye 👋")
		os.Exit(1)
	}()

	fmt.Println("##########################################")
	fmt.Println("######    Threshold Secret Recovery ######")
	fmt.Println("##########################################")
	fmt.Println()

	var action string
	for {
		err := survey.AskOne(prompt, &action)
		if err != nil {
			printError(os.Stdout, err)
			return
		}

		method := actions[action]
		err = method(node)
		if xerrors.Is(err, errExit) {
			fmt.Println("bye 👋")
			return
		}
		if err != nil {
			printError(os.Stdout, err)
		}
	}
}

// -----------------------------------------------------------------------------
// Non interactive

// RecoverFiles recovers the secret of every file and writes the results to
// out. A single file prints the bare secret, several files print one
// "path: secret" line each. Failures go to errOut and make RecoverFiles
// return an error once every file was processed.
func RecoverFiles(node peer.Recoverer, paths []string, out, errOut io.Writer) error {
	if len(paths) == 1 {
		rec, err := node.RecoverFile(paths[0])
		if err != nil {
			printError(errOut, err)
			return err
		}
		fmt.Fprintln(out, rec.Secret)
		return nil
	}

	failed := 0
	for _, rec := range node.RecoverBatch(paths) {
		if rec.Failed() {
			failed++
			fmt.Fprintf(errOut, "%s: ", rec.Source)
			printError(errOut, rec.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", rec.Source, rec.Secret)
	}

	if failed > 0 {
		return xerrors.Errorf("%d of %d recoveries failed", failed, len(paths))
	}
	return nil
}

// -----------------------------------------------------------------------------
// Utils

func printError(w io.Writer, err error) {
	kind := impl.ErrorKind(err)
	if kind == "" {
		return
	}
	fmt.Fprintf(w, "Error (%s): %v\n", kind, err)
}
