// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package cmdapi holds the rt3 commands.
package cmdapi

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/mod/semver"
)

var (
	// Root represents the root command when called without any subcommands.
	Root = &cobra.Command{
		Use:          "rt3",
		Short:        "A scene file parser for the rt3 renderer.",
		SilenceUsage: true,
	}

	// version holds rt3 version. Should be set by build flag
	// "-X 'github.com/TarsilaSamille/rt3/cmd/rt3/internal/cmdapi.version=${version}'"
	version string

	// versionCmd represents the subcommand 'rt3 version'.
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints this rt3 CLI version information.",
		Run: func(cmd *cobra.Command, args []string) {
			v, u := parse(version)
			cmd.Printf("rt3 version %s\n%s\n", v, u)
		},
	}
)

func init() {
	Root.AddCommand(versionCmd)
	Root.AddCommand(parseCmd())
}

// parse returns a user facing version and release notes url
func parse(version string) (string, string) {
	u := "https://github.com/TarsilaSamille/rt3/releases/latest"
	if ok := semver.IsValid(version); !ok {
		return "- development", u
	}
	s := strings.Split(version, "-")
	if len(s) != 0 && s[len(s)-1] != "canary" {
		u = fmt.Sprintf("https://github.com/TarsilaSamille/rt3/releases/tag/%s", version)
	}
	return version, u
}

// Version returns the current rt3 binary version.
func Version() string {
	return version
}

const (
	flagConfig       = "config"
	flagConfigShort  = "c"
	flagFormat       = "format"
	flagLog          = "log"
	flagStrict       = "strict"
	flagVerbose      = "verbose"
	flagVerboseShort = "v"
)

// List of output formats of the parse command.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func addFlagConfig(set *pflag.FlagSet, target *string) {
	set.StringVarP(target, flagConfig, flagConfigShort, "", "path to an HCL file declaring additional tags")
}

func addFlagFormat(set *pflag.FlagSet, target *string) {
	set.StringVar(target, flagFormat, formatTable, "output format of the API calls (table or json)")
}

func addFlagLog(set *pflag.FlagSet, target *string) {
	set.StringVar(target, flagLog, "", "go template to use to format the parse report")
}

func addFlagStrict(set *pflag.FlagSet, target *bool) {
	set.BoolVar(target, flagStrict, false, "fail on attribute values that cannot be read as their declared type")
}

func addFlagVerbose(set *pflag.FlagSet, target *bool) {
	set.BoolVarP(target, flagVerbose, flagVerboseShort, false, "log every visited tag and added attribute")
}
