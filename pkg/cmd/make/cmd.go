// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package make

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cmdcore "github.com/prowarehouse-nl/recipemaker/pkg/cmd/core"
	"github.com/prowarehouse-nl/recipemaker/pkg/files"
	"github.com/prowarehouse-nl/recipemaker/pkg/recipe"
	"github.com/prowarehouse-nl/recipemaker/pkg/recipefmt"
)

type MakeOptions struct {
	Debug bool

	Name                   string
	Category               string
	IdentifierPrefix       string
	SelfServiceDescription string
	GroupName              string
	GroupTemplate          string
	PolicyName             string
	PolicyTemplate         string

	MakeCategories bool
	AddRegex       bool
	MakePolicy     bool

	Format        string
	OutputPath    string
	CacheDir      string
	ParentRecipes []string
	DefaultsFile  string
}

func NewOptions() *MakeOptions {
	return &MakeOptions{
		Category:         "Software",
		IdentifierPrefix: "apple.prowarehouse.patch-management-recipes",
		GroupName:        "SW - Patch Management",
		GroupTemplate:    "_Smart_Group.xml",
		PolicyName:       "%NAME% - Installer From AutoPKG",
		PolicyTemplate:   "_Install_Policy.xml",
		Format:           "yaml",
		OutputPath:       ".",
		CacheDir:         ".",
	}
}

func NewCmd(o *MakeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "make",
		Aliases: []string{"m"},
		Short:   "Generate a Jamf recipe file",
		RunE:    func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Flags()) },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")

	cmd.Flags().StringVar(&o.Name, "name", "", "Application name (NAME input; required)")
	cmd.Flags().StringVar(&o.Category, "category", o.Category, "Package category in Jamf Pro (CATEGORY input)")
	cmd.Flags().StringVar(&o.IdentifierPrefix, "identifier-prefix", o.IdentifierPrefix, "Prefix of the generated recipe identifier")
	cmd.Flags().StringVar(&o.SelfServiceDescription, "self-service-description", "", "Self Service description shown in Jamf Pro")
	cmd.Flags().StringVar(&o.GroupName, "group-name", o.GroupName, "Smart group name")
	cmd.Flags().StringVar(&o.GroupTemplate, "group-template", o.GroupTemplate, "Smart group template")
	cmd.Flags().StringVar(&o.PolicyName, "policy-name", o.PolicyName, "Policy name")
	cmd.Flags().StringVar(&o.PolicyTemplate, "policy-template", o.PolicyTemplate, "Policy template")

	cmd.Flags().BoolVar(&o.MakeCategories, "make-categories", false, "Add category-provisioning steps")
	cmd.Flags().BoolVar(&o.AddRegex, "add-regex", false, "Add a version-regex-generator step (only with --make-policy)")
	cmd.Flags().BoolVar(&o.MakePolicy, "make-policy", false, "Add halt, smart group and policy steps")

	cmd.Flags().StringVar(&o.Format, "format", o.Format, "Recipe output format (plist or yaml)")
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", o.OutputPath, "Directory the recipe file is written to")
	cmd.Flags().StringVar(&o.CacheDir, "cache-dir", o.CacheDir, "Recipe cache directory of the run that produced the package")
	cmd.Flags().StringArrayVar(&o.ParentRecipes, "parent-recipe", nil, "Candidate upstream recipe path (can be specified multiple times)")
	cmd.Flags().StringVar(&o.DefaultsFile, "defaults", "", "TOML file with default input values")
	return cmd
}

func (o *MakeOptions) Run(flags *pflag.FlagSet) error {
	ui := cmdcore.NewPlainUI(o.Debug)

	if o.DefaultsFile != "" {
		defs, err := loadDefaults(o.DefaultsFile)
		if err != nil {
			return err
		}
		o.applyDefaults(flags, defs)
	}

	format, err := recipefmt.NewFormat(o.Format)
	if err != nil {
		return err
	}

	parent := recipe.ResolveParent(o.CacheDir, o.ParentRecipes, ui)

	doc, err := recipe.Assemble(recipe.Settings{
		Name:                   o.Name,
		Category:               o.Category,
		IdentifierPrefix:       o.IdentifierPrefix,
		SelfServiceDescription: o.SelfServiceDescription,
		GroupName:              o.GroupName,
		GroupTemplate:          o.GroupTemplate,
		PolicyName:             o.PolicyName,
		PolicyTemplate:         o.PolicyTemplate,
		MakeCategories:         o.MakeCategories,
		AddRegex:               o.AddRegex,
		MakePolicy:             o.MakePolicy,
		CacheDir:               o.CacheDir,
		Parent:                 parent,
	})
	if err != nil {
		return err
	}

	var output string
	switch format {
	case recipefmt.FormatPlist:
		output, err = recipefmt.EncodePlist(doc.AsMap())
		if err != nil {
			return err
		}
	default:
		output = recipefmt.EncodeYAML(recipe.Reorder(doc.AsMap()))
	}

	outputFile := files.NewOutputFile(recipe.Filename(o.Name, o.MakePolicy, format), []byte(output))

	err = outputFile.Create(o.OutputPath)
	if err != nil {
		return fmt.Errorf("Writing %s: %s", outputFile.Path(o.OutputPath), err)
	}

	ui.Printf("Wrote to: %s\n", outputFile.Path(o.OutputPath))
	return nil
}
