/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package wriftutil wires the wildfire simulation core and its ingest
// collaborators into a cobra/viper command-line interface.
package wriftutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
type Cfg struct {
	*viper.Viper

	// inputFiles holds the names of the configuration options that are
	// input file paths.
	inputFiles []string

	Root, versionCmd, runCmd *cobra.Command
}

// InputFiles returns the names of the configuration options that are
// input files.
func (cfg *Cfg) InputFiles() []string { return cfg.inputFiles }

// options are the configuration options available to wrift.
var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
	isInputFile            bool
}

// InitializeConfig builds the command tree and binds every option in
// the table below to both a pflag flag and a viper key, following the
// teacher's inmaputil.InitializeConfig pattern.
func InitializeConfig() *Cfg {
	cfg := &Cfg{
		Viper: viper.New(),
	}

	cfg.Root = &cobra.Command{
		Use:   "wrift",
		Short: "A wildfire front-propagation simulator.",
		Long: `wrift simulates the spread of a wildfire front across a landscape using
a Rothermel surface-spread model and a variable-resolution front-propagation
engine. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'WRIFT_var' where 'var' is the name of the variable to be set.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setConfig(cfg)
		},
	}

	cfg.versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "version prints the version number of this build of wrift.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("wrift v%s\n", Version)
		},
		DisableAutoGenTag: true,
	}

	cfg.runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a wildfire simulation.",
		Long: `run ignites a fire at the given latitude and longitude and propagates
it across a LANDFIRE-derived grid for the configured number of minutes.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cfg)
		},
	}

	cfg.Root.AddCommand(cfg.versionCmd)
	cfg.Root.AddCommand(cfg.runCmd)

	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
		isInputFile            bool
	}{
		{
			name:        "config",
			usage:       `config specifies the configuration file location.`,
			defaultVal:  "",
			isInputFile: true,
			flagsets:    []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
		{
			name:        "landfire",
			usage:       `landfire specifies the path (or bucket-relative key) of the LANDFIRE-style NetCDF raster to ignite on.`,
			defaultVal:  "",
			isInputFile: true,
			flagsets:    []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:        "fueltable",
			usage:       `fueltable specifies the path of the fuel-type lookup CSV (fuel_code, delta, sigma, w0_tons_per_acre, mx_percent).`,
			defaultVal:  "",
			isInputFile: true,
			flagsets:    []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "bucket",
			usage:      `bucket specifies a cloud object store URL (file://, gs://, or s3://) used to fetch landfire/fueltable when they are not found locally.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "lat",
			usage:      `lat specifies the latitude of the ignition point.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "lon",
			usage:      `lon specifies the longitude of the ignition point.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "windspeed",
			usage:      `windspeed specifies the ambient wind speed in knots. A negative value (the default) causes wrift to query the weather service instead.`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "winddir",
			usage:      `winddir specifies the ambient wind direction in degrees clockwise from east. A negative value (the default) causes wrift to query the weather service instead.`,
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "weatherradius",
			usage:      `weatherradius specifies the search radius in miles used to find the nearest weather station when windspeed/winddir are not given.`,
			defaultVal: 50.0,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "mins",
			usage:      `mins specifies the number of simulated minutes to propagate the fire.`,
			defaultVal: 60,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "seed",
			usage:      `seed specifies the seed for the per-cell wind perturbation RNG. Runs with the same seed and inputs are reproducible.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
		{
			name:       "loglevel",
			usage:      `loglevel specifies the logging verbosity (panic, fatal, error, warn, info, debug, trace).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
	}

	for _, option := range options {
		if option.isInputFile {
			cfg.inputFiles = append(cfg.inputFiles, option.name)
		}
		for _, set := range option.flagsets {
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, v, option.usage)
				} else {
					set.IntP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic(fmt.Errorf("wriftutil: invalid option default type: %T", option.defaultVal))
			}
			cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	cfg.SetEnvPrefix("WRIFT")
	cfg.AutomaticEnv()

	return cfg
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig(cfg *Cfg) error {
	if cfgpath := cfg.GetString("config"); cfgpath != "" {
		cfg.SetConfigFile(cfgpath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("wrift: problem reading configuration file: %v", err)
		}
	}
	return nil
}
