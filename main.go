// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"github.com/synthetik-technologies/explicitSolidDynamics/driver"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvp"
)

// copyright is printed by the run command; source files carry the same notice
const copyright = "Copyright 2016 The explicitSolidDynamics Authors. All rights reserved."

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "esd",
		Short:         "Explicit solid dynamics boundary conditions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCmd(), rampCmd(), typesCmd())
	return cmd
}

// runCmd runs a simulation given in a .sim (JSON) or .yaml file
func runCmd() *cobra.Command {
	var (
		verbose bool
		plot    bool
	)
	cmd := &cobra.Command{
		Use:   "run <file.sim>",
		Short: "Run the time loop of a simulation and write boundary histories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				io.PfWhite("\nexplicitSolidDynamics -- symmetric traction boundary conditions\n")
				io.Pf("%s\n", copyright)
				io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
					"filename path", "fnamepath", args[0],
					"show messages", "verbose", verbose,
					"plot histories", "plot", plot,
				))
			}
			analysis, err := driver.NewMain(args[0], verbose)
			if err != nil {
				return err
			}
			err = analysis.Run()
			if err != nil {
				return err
			}
			if plot {
				for name, hist := range analysis.History {
					hist.Plot(analysis.Sim.DirOut, analysis.Sim.Key+"-"+name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot boundary histories")
	return cmd
}

// rampCmd prints a table with ramp factors
func rampCmd() *cobra.Command {
	var (
		endTime float64
		tmax    float64
		npts    int
	)
	cmd := &cobra.Command{
		Use:   "ramp",
		Short: "Print the ramp factor of symmetricTraction versus time",
		RunE: func(cmd *cobra.Command, args []string) error {
			if npts < 2 {
				return chk.Err("number of points must be at least 2. %d is invalid", npts)
			}
			ramp := fvp.NewRamp(endTime)
			io.Pf("%23s%23s\n", "t", "r")
			for i := 0; i < npts; i++ {
				t := tmax * float64(i) / float64(npts-1)
				io.Pf("%23.15e%23.15e\n", t, ramp.Factor(t))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&endTime, "end", 1, "ramp end time")
	cmd.Flags().Float64Var(&tmax, "tmax", 2, "maximum time")
	cmd.Flags().IntVarP(&npts, "npts", "n", 11, "number of points")
	return cmd
}

// typesCmd lists the available patch field types
func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the available boundary condition types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, typ := range fvp.Types() {
				io.Pf("%s\n", typ)
			}
		},
	}
}
