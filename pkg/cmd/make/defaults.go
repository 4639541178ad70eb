// Copyright 2025 Pro Warehouse.
// SPDX-License-Identifier: Apache-2.0

package make

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/prowarehouse-nl/recipemaker/pkg/recipe"
)

// loadDefaults reads a TOML file of input values, keyed the way the
// invoking automation framework names them (NAME, CATEGORY,
// make_policy, ...).
func loadDefaults(path string) (map[string]interface{}, error) {
	var defs map[string]interface{}

	_, err := toml.DecodeFile(path, &defs)
	if err != nil {
		return nil, fmt.Errorf("Loading defaults file %s: %s", path, err)
	}
	return defs, nil
}

// applyDefaults fills options from defaults-file values, for flags the
// user did not set explicitly. Boolean values in the file may be
// loosely typed (absent, "False", bool) and are normalized here; code
// past this boundary only sees strict booleans.
func (o *MakeOptions) applyDefaults(flags *pflag.FlagSet, defs map[string]interface{}) {
	stringDefaults := []struct {
		flag string
		key  string
		dst  *string
	}{
		{"name", "NAME", &o.Name},
		{"category", "CATEGORY", &o.Category},
		{"identifier-prefix", "RECIPE_IDENTIFIER_PREFIX", &o.IdentifierPrefix},
		{"self-service-description", "SELF_SERVICE_DESCRIPTION", &o.SelfServiceDescription},
		{"group-name", "GROUP_NAME", &o.GroupName},
		{"group-template", "group_template", &o.GroupTemplate},
		{"policy-name", "POLICY_NAME", &o.PolicyName},
		{"policy-template", "policy_template", &o.PolicyTemplate},
		{"format", "format", &o.Format},
		{"output", "RECIPE_OUTPUT_PATH", &o.OutputPath},
		{"cache-dir", "RECIPE_CACHE_DIR", &o.CacheDir},
	}
	for _, def := range stringDefaults {
		if flags.Changed(def.flag) {
			continue
		}
		if val, found := defs[def.key]; found {
			*def.dst = stringValue(val)
		}
	}

	boolDefaults := []struct {
		flag string
		key  string
		dst  *bool
	}{
		{"make-categories", "make_categories", &o.MakeCategories},
		{"add-regex", "add_regex", &o.AddRegex},
		{"make-policy", "make_policy", &o.MakePolicy},
	}
	for _, def := range boolDefaults {
		if flags.Changed(def.flag) {
			continue
		}
		if val, found := defs[def.key]; found {
			*def.dst = recipe.BoolValue(val)
		}
	}

	if !flags.Changed("parent-recipe") {
		if val, found := defs["PARENT_RECIPES"]; found {
			if list, ok := val.([]interface{}); ok {
				o.ParentRecipes = nil
				for _, item := range list {
					o.ParentRecipes = append(o.ParentRecipes, stringValue(item))
				}
			}
		}
	}
}

func stringValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", val)
}
