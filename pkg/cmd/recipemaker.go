package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	cmdmake "github.com/prowarehouse-nl/recipemaker/pkg/cmd/make"
	"github.com/prowarehouse-nl/recipemaker/pkg/version"
)

type RecipeMakerOptions struct{}

func NewDefaultRecipeMakerOptions() *RecipeMakerOptions {
	return &RecipeMakerOptions{}
}

func NewDefaultRecipeMakerCmd() *cobra.Command {
	return NewRecipeMakerCmd(NewDefaultRecipeMakerOptions())
}

func NewRecipeMakerCmd(o *RecipeMakerOptions) *cobra.Command {
	cmd := cmdmake.NewCmd(cmdmake.NewOptions())

	cmd.Use = "recipemaker"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "recipemaker generates Jamf AutoPkg recipes"
	cmd.Long = `recipemaker generates Jamf AutoPkg recipes.

Run as a post-processing step after a pkg or jss recipe run, it writes
a new recipe chaining the Jamf upload processors for the built package.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdmake.NewCmd(cmdmake.NewOptions())) // for scripted use

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
