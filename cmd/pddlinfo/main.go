// Command pddlinfo parses PDDL domain and problem files and prints a
// summary of what was found: types, predicates, functions, operators,
// and (for problems) the object count and whether a metric and
// constraints are present.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/parser"
)

func main() {
	var debug bool
	var printTree bool

	flag.BoolVar(&debug, "debug", false, "enable per-rule parse trace")
	flag.BoolVar(&printTree, "print", false, "print the canonical PDDL form of every parsed domain/problem")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.pddl [file.pddl ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parses PDDL domain and problem files and summarizes their contents.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	result, err := parser.Parse(flag.Args(), debug)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, d := range result.Domains() {
		printDomainSummary(d)
		if printTree {
			fmt.Println(d.Print())
		}
	}
	for _, p := range result.Problems() {
		printProblemSummary(p)
		if printTree {
			fmt.Println(p.Print())
		}
	}
}

func printDomainSummary(d *pddl.Domain) {
	title := color.New(color.FgGreen, color.Bold)
	title.Printf("domain %s\n", d.Name())

	var b strings.Builder
	table := tablewriter.NewTable(&b,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"component", "count"})
	table.Append([]string{"types", fmt.Sprint(d.Types().Len())})
	table.Append([]string{"constants", fmt.Sprint(d.Constants().Len())})
	table.Append([]string{"predicates", fmt.Sprint(d.Predicates().Len())})
	table.Append([]string{"functions", fmt.Sprint(d.Functions().Len())})
	table.Append([]string{"classes", fmt.Sprint(d.Classes().Len())})
	table.Append([]string{"derived predicates", fmt.Sprint(d.DerivedPredicates().Len())})
	table.Append([]string{"preferences", fmt.Sprint(d.Preferences().Len())})
	table.Append([]string{"actions", fmt.Sprint(len(d.Actions()))})
	table.Append([]string{"durative actions", fmt.Sprint(len(d.DurativeActionList()))})
	table.Append([]string{"events", fmt.Sprint(len(d.Events()))})
	table.Append([]string{"processes", fmt.Sprint(len(d.Processes()))})
	table.Render()
	fmt.Print(b.String())
	fmt.Println()
}

func printProblemSummary(p *pddl.Problem) {
	title := color.New(color.FgCyan, color.Bold)
	title.Printf("problem %s (domain %s)\n", p.Name(), p.Domain().Name())

	var b strings.Builder
	table := tablewriter.NewTable(&b,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"component", "value"})
	table.Append([]string{"objects", fmt.Sprint(p.Objects().Len())})
	table.Append([]string{"has metric", fmt.Sprint(p.Metric() != nil)})
	table.Append([]string{"has constraints", fmt.Sprint(p.Constraints() != nil)})
	table.Render()
	fmt.Print(b.String())
	fmt.Println()
}
