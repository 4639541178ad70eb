package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/prowarehouse-nl/recipemaker/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultRecipeMakerCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "recipemaker: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
