// Copyright 2019 The MITRE Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattrbianchi/twig"
	"github.com/mitre/enacp/ena"
	"github.com/mitre/enacp/enalib"
	"github.com/mitre/enacp/flags"
	"github.com/mitre/enacp/info"
	"github.com/mitre/enacp/transfer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	debug bool

	outdir   string
	mode     string
	endpoint string
	identity string
	timeout  time.Duration
	skipMd5  bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug output.")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		panic("INTERNAL ERROR: could not bind debug flag to debug environment variable")
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Silent, flags.SilentName, "s", false, flags.SilentMsg)
	if err := viper.BindPFlag(flags.SilentName, rootCmd.PersistentFlags().Lookup(flags.SilentName)); err != nil {
		panic("INTERNAL ERROR: could not bind silent flag to silent environment variable")
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, flags.VerboseName, "v", false, flags.VerboseMsg)
	if err := viper.BindPFlag(flags.VerboseName, rootCmd.PersistentFlags().Lookup(flags.VerboseName)); err != nil {
		panic("INTERNAL ERROR: could not bind verbose flag to verbose environment variable")
	}

	rootCmd.Flags().StringVarP(&outdir, flags.OutDirName, "o", ".", flags.OutDirMsg)
	if err := viper.BindPFlag(flags.OutDirName, rootCmd.Flags().Lookup(flags.OutDirName)); err != nil {
		panic("INTERNAL ERROR: could not bind outdir flag to outdir environment variable")
	}

	rootCmd.Flags().StringVarP(&mode, flags.ModeName, "m", "ascp", flags.ModeMsg)
	if err := viper.BindPFlag(flags.ModeName, rootCmd.Flags().Lookup(flags.ModeName)); err != nil {
		panic("INTERNAL ERROR: could not bind mode flag to mode environment variable")
	}

	rootCmd.Flags().StringVarP(&endpoint, flags.EndpointName, "e", "https://www.ebi.ac.uk/ena/portal/api", flags.EndpointMsg)
	if err := viper.BindPFlag(flags.EndpointName, rootCmd.Flags().Lookup(flags.EndpointName)); err != nil {
		panic("INTERNAL ERROR: could not bind endpoint flag to endpoint environment variable")
	}

	rootCmd.Flags().StringVarP(&identity, flags.IdentityName, "i", "", flags.IdentityMsg)
	if err := viper.BindPFlag(flags.IdentityName, rootCmd.Flags().Lookup(flags.IdentityName)); err != nil {
		panic("INTERNAL ERROR: could not bind identity flag to identity environment variable")
	}

	rootCmd.Flags().DurationVarP(&timeout, flags.TimeoutName, "t", 0, flags.TimeoutMsg)
	if err := viper.BindPFlag(flags.TimeoutName, rootCmd.Flags().Lookup(flags.TimeoutName)); err != nil {
		panic("INTERNAL ERROR: could not bind timeout flag to timeout environment variable")
	}

	rootCmd.Flags().BoolVar(&skipMd5, flags.SkipMd5Name, false, flags.SkipMd5Msg)
	if err := viper.BindPFlag(flags.SkipMd5Name, rootCmd.Flags().Lookup(flags.SkipMd5Name)); err != nil {
		panic("INTERNAL ERROR: could not bind skip-md5 flag to skip-md5 environment variable")
	}

	viper.SetEnvPrefix(flags.EnvPrefix)
	viper.AutomaticEnv()
	info.BinaryName = "enacp"
}

var rootCmd = &cobra.Command{
	Use:     "enacp [flags] accession",
	Short:   "Copy sequencing run files from the European Nucleotide Archive to a local file system.",
	Long:    ``,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		setConfig()
		twig.Debug("got enacp command")
		twig.Debug("args:")
		twig.Debug(args)
		foldEnvVarsIntoFlagValues()
		if args[0] == "" {
			return errors.New("no accessions provided: enacp needs an accession in order to know what files to copy")
		}
		accessions, err := flags.ResolveAccession(args[0])
		if err != nil {
			return err
		}
		twig.Debug("accessions: " + strings.Join(accessions, ","))

		var transferer enalib.Transferer
		switch mode {
		case "ascp":
			transferer, err = transfer.NewAscp(identity, timeout)
			if err != nil {
				return err
			}
		case "http":
			transferer = transfer.NewHTTP(timeout)
		default:
			return errors.Errorf("couldn't interpret mode: %s: must be one of [ascp | http]", mode)
		}

		fetcher := &enalib.Fetcher{
			API:        ena.NewClient(endpoint, timeout),
			Transferer: transferer,
			OutDir:     outdir,
			SkipVerify: skipMd5,
		}

		var failed []string
		for _, acc := range accessions {
			err := fetcher.Fetch(acc)
			if err == nil {
				continue
			}
			if len(accessions) == 1 {
				return err
			}
			twig.Debug(err)
			if !flags.Silent {
				fmt.Println(err.Error())
			}
			failed = append(failed, acc)
		}
		if len(failed) > 0 {
			return errors.Errorf("failed to copy accession(s): %s", strings.Join(failed, ", "))
		}
		return nil
	},
}

// Execute runs the root command of enacp, which copies files from the
// archive to a local file system.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		prettyPrintError(err)
		os.Exit(1)
	}
}

func foldEnvVarsIntoFlagValues() {
	flags.ResolveString(flags.OutDirName, &outdir)
	flags.ResolveString(flags.ModeName, &mode)
	flags.ResolveString(flags.EndpointName, &endpoint)
	flags.ResolveString(flags.IdentityName, &identity)
	flags.ResolveDuration(flags.TimeoutName, &timeout)
	flags.ResolveBool(flags.SkipMd5Name, &skipMd5)
}

func setConfig() {
	// If debug flag gets set, print debug statements.
	twig.SetDebug(debug)
	if flags.Silent {
		flags.Verbose = false
	}
}
