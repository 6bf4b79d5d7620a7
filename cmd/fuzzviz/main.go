package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	fuzzyset "github.com/softsets/fuzzyset"
	"github.com/softsets/fuzzyset/input"
	"github.com/softsets/fuzzyset/tfn"
	"github.com/softsets/fuzzyset/util"
	"github.com/softsets/fuzzyset/viz"
)

func main() {
	var (
		arithmeticPath = flag.String("arithmetic", "arithmetic.html", "path of the rendered arithmetic page")
		setsPath       = flag.String("sets", "sets.html", "path of the rendered set operations page")
	)

	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	stdin := input.NewReader(os.Stdin)

	lhs, err := stdin.ReadNumber(os.Stdout, "A")
	if err != nil {
		util.LogError("reading first number", err)
		os.Exit(1)
	}

	rhs, err := stdin.ReadNumber(os.Stdout, "B")
	if err != nil {
		util.LogError("reading second number", err)
		os.Exit(1)
	}

	defer util.LogDuration("render")()

	if err := renderToFile(*arithmeticPath, func(output *os.File) error {
		return viz.RenderArithmetic(output, "A", "B", lhs, rhs)
	}); err != nil {
		util.LogError("rendering arithmetic page", err, slog.String("path", *arithmeticPath))
		os.Exit(1)
	}

	slog.Info("wrote arithmetic page", slog.String("path", *arithmeticPath))

	if err := renderToFile(*setsPath, func(output *os.File) error {
		return renderSets(output, lhs, rhs)
	}); err != nil {
		util.LogError("rendering set operations page", err, slog.String("path", *setsPath))
		os.Exit(1)
	}

	slog.Info("wrote set operations page", slog.String("path", *setsPath))
}

func renderToFile(path string, render func(output *os.File) error) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	defer output.Close()

	return render(output)
}

// renderSets charts the two numbers as continuous fuzzy sets over the
// interval spanning both supports, alongside their set operations.
func renderSets(output *os.File, lhs, rhs tfn.Number) error {
	domain, err := fuzzyset.NewInterval(math.Min(lhs.Left(), rhs.Left()), math.Max(lhs.Right(), rhs.Right()))
	if err != nil {
		return err
	}

	lhsSet, err := fuzzyset.NewContinuous(domain, lhs.Mu)
	if err != nil {
		return err
	}

	rhsSet, err := fuzzyset.NewContinuous(domain, rhs.Mu)
	if err != nil {
		return err
	}

	return viz.RenderOperations(output, "A", "B", lhsSet, rhsSet)
}
