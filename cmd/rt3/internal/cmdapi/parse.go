// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdapi

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/TarsilaSamille/rt3/api"
	"github.com/TarsilaSamille/rt3/cmd/rt3/internal/cmdlog"
	"github.com/TarsilaSamille/rt3/parser"
	"github.com/TarsilaSamille/rt3/parser/tagspec"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

type parseFlags struct {
	config    string
	format    string
	logFormat string
	strict    bool
	verbose   bool
}

// parseCmd represents the 'rt3 parse' subcommand.
func parseCmd() *cobra.Command {
	var (
		flags parseFlags
		cmd   = &cobra.Command{
			Use:   "parse [flags] <scene>",
			Short: "Parse a scene file and print the API calls it drives.",
			Long: `'rt3 parse' reads the scene file, and prints the rendering API calls
it drives in document order, each one with its parameter set.

Files with the ".hcl" extension are read as HCL, any other file is read as XML.
Tags that are not recognized, and attribute values that cannot be read, are
reported as warnings unless the --strict flag is set.`,
			Example: `  rt3 parse scene.xml
  rt3 parse --format json ~/scenes/scene.xml
  rt3 parse --strict -c tags.hcl scene.hcl
  rt3 parse --log '{{ json . }}' scene.xml`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return parseRun(cmd, args, flags)
			},
		}
	)
	cmd.Flags().SortFlags = false
	addFlagStrict(cmd.Flags(), &flags.strict)
	addFlagVerbose(cmd.Flags(), &flags.verbose)
	addFlagConfig(cmd.Flags(), &flags.config)
	addFlagFormat(cmd.Flags(), &flags.format)
	addFlagLog(cmd.Flags(), &flags.logFormat)
	return cmd
}

func parseRun(cmd *cobra.Command, args []string, flags parseFlags) error {
	if flags.format != formatTable && flags.format != formatJSON {
		return fmt.Errorf("unknown format %q, expect %q or %q", flags.format, formatTable, formatJSON)
	}
	format := cmdlog.ParseTemplate
	if v := flags.logFormat; v != "" {
		var err error
		format, err = template.New("format").Funcs(cmdlog.ReportTemplateFuncs).Parse(v)
		if err != nil {
			return fmt.Errorf("parse log format: %w", err)
		}
	}
	path, err := homedir.Expand(args[0])
	if err != nil {
		return err
	}
	var (
		report = &cmdlog.ParseReport{File: path}
		rec    = &api.Recorder{}
		opts   = []parser.Option{
			parser.WithLogger(cmdlog.NewLogger(cmd.ErrOrStderr(), flags.verbose, report)),
		}
	)
	if flags.strict {
		opts = append(opts, parser.WithStrict())
	}
	if flags.config != "" {
		config, err := homedir.Expand(flags.config)
		if err != nil {
			return err
		}
		opt, err := tagspec.Option(config)
		if err != nil {
			return fmt.Errorf("load tags config %q: %w", config, err)
		}
		opts = append(opts, opt)
	}
	if err := parser.Parse(path, rec, opts...); err != nil {
		report.Error = err.Error()
		if flags.logFormat != "" {
			if err := format.Execute(cmd.ErrOrStderr(), report); err != nil {
				return err
			}
		}
		return err
	}
	report.Calls = len(rec.Calls)
	if err := printCalls(cmd, rec, flags.format); err != nil {
		return err
	}
	return format.Execute(cmd.ErrOrStderr(), report)
}

// printCalls writes the recorded calls to the command output.
func printCalls(cmd *cobra.Command, rec *api.Recorder, format string) error {
	if format == formatJSON {
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return err
	}
	p := api.NewPrinter(cmd.OutOrStdout())
	for _, c := range rec.Calls {
		if err := p.Directive(c.Name, c.Params); err != nil {
			return err
		}
	}
	return nil
}
