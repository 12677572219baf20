// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/mipsi/cpu"
	"github.com/ezrec/mipsi/emulator"
	"github.com/ezrec/mipsi/repl"
	"github.com/ezrec/mipsi/report"
)

func main() {
	var script string
	var interactive bool
	var verbose bool
	var mult bool
	var hex bool
	var quiet bool
	var strict bool
	var listing bool

	asm := &cpu.Assembler{}

	flag.StringVar(&script, "c", "-", "Instruction script to run")
	flag.BoolVar(&interactive, "i", false, "Interactive mode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&mult, "m", false, "Let mult write hi/lo")
	flag.BoolVar(&hex, "x", false, "Report values in hex")
	flag.BoolVar(&quiet, "q", false, "Do not echo instructions")
	flag.BoolVar(&strict, "s", false, "Exit with failure if any instruction fails")
	flag.BoolVar(&listing, "l", false, "Print the assembled script instead of running it")
	flag.Func("e", "Predefine an equate, NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}
		asm.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	table := report.NewTable(os.Stdout)
	table.Hex = hex
	table.Quiet = quiet

	if interactive {
		r := repl.New(table)
		r.Assembler = asm
		r.Assembler.Reset()
		r.Cpu.Verbose = verbose
		r.Cpu.Mult = mult
		r.Start(os.Stdin, os.Stdout)
		return
	}

	var input io.ReadCloser = os.Stdin
	if script != "-" {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		input = inf
	}

	emu := emulator.NewEmulator(table)
	emu.Verbose = verbose
	emu.Mult = mult

	err := emu.Load(asm, input)
	input.Close()
	if err != nil {
		log.Fatalf("%v: %v", script, err)
	}

	if listing {
		fmt.Print(emu.Program)
		return
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", script, err)
	}

	// Errors were reported as they happened.
	err = emu.Run()
	if err != nil && strict {
		log.Fatalf("%v: %d of %d instructions failed", script, emu.Faults, emu.Ticks)
	}
}
