// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/ukilo/asm"
	"github.com/ezrec/ukilo/machine"
)

var rootCmd = &cobra.Command{
	Use:           "ukilo",
	Short:         "Assembler and simulator for the μKILO decimal machine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var asmOutput string
var asmVerbose bool

var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file into a memory image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := assemble(args[0])
		if err != nil {
			return err
		}

		if asmVerbose {
			pp.Fprintf(os.Stderr, "%v\n", prog.Listing)
		}

		out := os.Stdout
		if asmOutput != "-" {
			out, err = os.Create(asmOutput)
			if err != nil {
				return err
			}
			defer out.Close()
		}

		return machine.SaveImage(out, prog.Image)
	},
}

var runInput string
var runLimit int
var runVerbose bool

var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Assemble (or load a .img image) and run it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var prog *asm.Program

		if strings.HasSuffix(args[0], ".img") {
			inf, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer inf.Close()

			image, err := machine.LoadImage(inf)
			if err != nil {
				return err
			}
			prog = &asm.Program{Image: image}
		} else {
			var err error
			prog, err = assemble(args[0])
			if err != nil {
				return err
			}
		}

		mach := &machine.Machine{
			Verbose: runVerbose,
			Output:  os.Stdout,
		}

		if runInput == "-" {
			mach.Input = os.Stdin
		} else {
			inf, err := os.Open(runInput)
			if err != nil {
				return err
			}
			defer inf.Close()
			mach.Input = inf
		}

		err := prog.Commit(mach)
		if err != nil {
			return err
		}

		err = mach.Run(runLimit)

		// Report faults against the source when the listing knows it.
		var runtime *machine.ErrRuntime
		if errors.As(err, &runtime) {
			if lineno, ok := prog.LineAt(runtime.Pc); ok {
				return fmt.Errorf("line %v: %w", lineno, err)
			}
		}

		return err
	},
}

func assemble(path string) (prog *asm.Program, err error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return asm.Assemble(string(text))
}

func main() {
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "-", "Image output file")
	asmCmd.Flags().BoolVarP(&asmVerbose, "verbose", "v", false, "Dump the listing")
	rootCmd.AddCommand(asmCmd)

	runCmd.Flags().StringVarP(&runInput, "input", "i", "-", "Input tape")
	runCmd.Flags().IntVarP(&runLimit, "limit", "l", 0, "Step limit (0 is unbounded)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose mode")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
