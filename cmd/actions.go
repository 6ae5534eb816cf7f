package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"go.dedis.ch/sharerecovery/peer"
)

// -----------------------------------------------------------------------------
// Recoverer CMD actions

var actionOpts = []string{
	"🌱 Recover a secret from a share file",
	"🌿 Recover secrets from several share files",
	"🐋 Show recovered secrets",
	"🍃 Exit",
}

var actions = map[string]func(peer.Recoverer) error{
	actionOpts[0]: recoverFile,
	actionOpts[1]: recoverBatch,
	actionOpts[2]: showResults,
	actionOpts[3]: exit,
}

// -----------------------------------------------------------------------------
// Perform actions

func recoverFile(node peer.Recoverer) error {
	path := ""
	err := survey.AskOne(&survey.Input{Message: "Enter the path to the share document:"}, &path,
		survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	rec, err := node.RecoverFile(strings.TrimSpace(path))
	if err != nil {
		return err
	}

	fmt.Printf("The secret of %s is %s\n", rec.Source, rec.Secret)
	return nil
}

func recoverBatch(node peer.Recoverer) error {
	input := ""
	err := survey.AskOne(&survey.Input{Message: "Enter the paths to the share documents, separated by spaces:"},
		&input, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	return RecoverFiles(node, strings.Fields(input), os.Stdout, os.Stdout)
}

func showResults(node peer.Recoverer) error {
	results := node.Results()
	if len(results) == 0 {
		fmt.Println("No secret recovered yet")
		return nil
	}

	for _, rec := range results {
		fmt.Printf("%s  k=%-3d  %s  %s\n", rec.Fingerprint[:18], rec.K, rec.Source, rec.Secret)
	}
	return nil
}

func exit(peer.Recoverer) error {
	return errExit
}
