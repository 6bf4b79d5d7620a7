// Package viz renders fuzzy sets and triangular fuzzy numbers as
// Apache ECharts documents.
package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	fuzzyset "github.com/softsets/fuzzyset"
	"github.com/softsets/fuzzyset/tfn"
)

// FiniteChart plots the membership degree of each domain element as a
// scatter series. Element labels come from fmt.Sprint so any comparable
// element type renders.
func FiniteChart[T comparable](title string, set *fuzzyset.Finite[T]) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: "degree", Max: 1}),
	)

	var (
		labels []string
		points []opts.ScatterData
	)

	set.Domain().Each(func(element T) bool {
		labels = append(labels, fmt.Sprint(element))
		points = append(points, opts.ScatterData{Value: set.Mu(element)})

		return true
	})

	scatter.SetXAxis(labels).AddSeries("membership", points)
	return scatter
}

// ContinuousChart plots the sampled membership degrees over the domain
// grid as a line series.
func ContinuousChart(title string, set *fuzzyset.Continuous) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: "degree", Max: 1}),
	)

	var (
		labels []string
		points []opts.LineData
	)

	set.Domain().Each(func(element float64) bool {
		labels = append(labels, fmt.Sprintf("%g", element))
		points = append(points, opts.LineData{Value: set.Mu(element)})

		return true
	})

	line.SetXAxis(labels).AddSeries("membership", points)
	return line
}

// NumberChart plots a triangular fuzzy number as its three corners
// joined by line segments.
func NumberChart(title string, number tfn.Number) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: "degree", Max: 1}),
	)

	labels := []string{
		fmt.Sprintf("%g", number.Left()),
		fmt.Sprintf("%g", number.Peak()),
		fmt.Sprintf("%g", number.Right()),
	}

	points := []opts.LineData{
		{Value: 0.0},
		{Value: 1.0},
		{Value: 0.0},
	}

	line.SetXAxis(labels).AddSeries(number.String(), points)
	return line
}

// RenderArithmetic writes a page charting two triangular fuzzy numbers
// alongside their sum, difference, product and quotient. Operations
// whose operands are out of range are skipped.
func RenderArithmetic(w io.Writer, lhsName, rhsName string, lhs, rhs tfn.Number) error {
	page := components.NewPage()
	page.AddCharts(
		NumberChart(lhsName, lhs),
		NumberChart(rhsName, rhs),
	)

	if sum, err := lhs.Add(rhs); err == nil {
		page.AddCharts(NumberChart(lhsName+" + "+rhsName, sum))
	}

	if difference, err := lhs.Sub(rhs); err == nil {
		page.AddCharts(NumberChart(lhsName+" - "+rhsName, difference))
	}

	if product, err := lhs.Mul(rhs); err == nil {
		page.AddCharts(NumberChart(lhsName+" * "+rhsName, product))
	}

	if quotient, err := lhs.Div(rhs); err == nil {
		page.AddCharts(NumberChart(lhsName+" / "+rhsName, quotient))
	}

	return page.Render(w)
}

// RenderOperations writes a page charting two continuous sets alongside
// their default-norm intersection, union and complements.
func RenderOperations(w io.Writer, lhsName, rhsName string, lhs, rhs *fuzzyset.Continuous) error {
	page := components.NewPage()
	page.AddCharts(
		ContinuousChart(lhsName, lhs),
		ContinuousChart(rhsName, rhs),
	)

	if intersection, err := lhs.TNorm(rhs, nil); err != nil {
		return err
	} else {
		page.AddCharts(ContinuousChart(lhsName+" AND "+rhsName, intersection))
	}

	if union, err := lhs.SNorm(rhs, nil); err != nil {
		return err
	} else {
		page.AddCharts(ContinuousChart(lhsName+" OR "+rhsName, union))
	}

	if complement, err := lhs.Complement(nil); err != nil {
		return err
	} else {
		page.AddCharts(ContinuousChart("NOT "+lhsName, complement))
	}

	return page.Render(w)
}
