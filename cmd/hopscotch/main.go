// Command hopscotch computes the strongly-connected-component
// condensation of a directed graph and emits its groups in reverse
// topological order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1homsi/hopscotch/internal/dotattrs"
	"github.com/1homsi/hopscotch/internal/engine"
	"github.com/1homsi/hopscotch/internal/frontend"
	"github.com/1homsi/hopscotch/internal/modgraph"
	"github.com/1homsi/hopscotch/internal/symtab"
	"github.com/1homsi/hopscotch/internal/version"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		if err := version.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(version.String)
		return
	}
	os.Exit(run(os.Args[1:]))
}

func usage() {
	fmt.Fprintln(os.Stderr, `hopscotch — strongly-connected-component condensation

Usage:
  hopscotch [-d] [-module dir] [-dot-config file.yaml] [input-file]
  hopscotch version

  -d                 emit DOT-language output instead of plain group listings
  -module dir        read a Go module's package-import graph instead of
                     line-oriented text; mutually exclusive with input-file
  -dot-config file   YAML overlay for DOT attributes, applied on top of the
                     HOPSCOTCH_DOT_* environment variables
  -h                 print this message`)
}

func run(args []string) int {
	fs := flag.NewFlagSet("hopscotch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dot := fs.Bool("d", false, "emit DOT-language output")
	modDir := fs.String("module", "", "load a Go module's package-import graph from this directory")
	dotConfig := fs.String("dot-config", "", "YAML overlay file for DOT attributes")
	help := fs.Bool("h", false, "print usage")
	fs.Usage = usage

	if err := fs.Parse(args); err != nil {
		usage()
		return 1
	}
	if *help {
		usage()
		return 0
	}
	if fs.NArg() > 1 {
		usage()
		return 1
	}
	if *modDir != "" && fs.NArg() == 1 {
		fmt.Fprintln(os.Stderr, "hopscotch: -module and an input file are mutually exclusive")
		return 1
	}

	tab := symtab.New()
	eng := engine.New()
	defer eng.Free()

	if *modDir != "" {
		result, err := modgraph.Load(*modDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load: %v\n", err)
			return 1
		}
		if err := modgraph.Feed(result, tab, eng); err != nil {
			fmt.Fprintf(os.Stderr, "feed: %v\n", err)
			return 1
		}
	} else {
		in := os.Stdin
		if fs.NArg() == 1 {
			f, err := os.Open(fs.Arg(0))
			if err != nil {
				fmt.Fprintf(os.Stderr, "open: %v\n", err)
				return 1
			}
			defer f.Close()
			in = f
		}
		if err := frontend.Parse(in, tab, eng); err != nil {
			fmt.Fprintf(os.Stderr, "parse: %v\n", err)
			return 1
		}
	}

	if !eng.Seal() {
		fmt.Fprintf(os.Stderr, "seal: %v\n", eng.Err())
		return 1
	}

	var groups [][]uint32
	if !eng.Solve(0, func(_ uint32, members []uint32) {
		cp := make([]uint32, len(members))
		copy(cp, members)
		groups = append(groups, cp)
	}) {
		fmt.Fprintf(os.Stderr, "solve: %v\n", eng.Err())
		return 1
	}

	if !*dot {
		if err := frontend.WritePlain(os.Stdout, tab, groups); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			return 1
		}
		return 0
	}

	attrs := dotattrs.FromEnv()
	if *dotConfig != "" {
		var err error
		attrs, err = dotattrs.Load(*dotConfig, attrs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dot-config: %v\n", err)
			return 1
		}
	}
	if err := frontend.WriteDOT(os.Stdout, tab, eng, groups, attrs); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		return 1
	}
	return 0
}
