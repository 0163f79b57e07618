package domain

import "strings"

type Unit string

const (
	UnitAlgebra      Unit = "algebra"
	UnitArithmetic   Unit = "arithmetic"
	UnitGeometry     Unit = "geometry"
	UnitLRDI         Unit = "lrdi"
	UnitModernMath   Unit = "modern-math"
	UnitNumberSystem Unit = "number-system"
	UnitOther        Unit = "other"
)

// Units lists every tag Categorize can return, in display order.
var Units = []Unit{UnitAlgebra, UnitArithmetic, UnitGeometry, UnitLRDI, UnitModernMath, UnitNumberSystem, UnitOther}

type unitRule struct {
	unit     Unit
	prefix   string
	contains []string
}

func (r unitRule) matches(label string) bool {
	if r.prefix != "" {
		return strings.HasPrefix(label, r.prefix)
	}
	for _, s := range r.contains {
		if strings.Contains(label, s) {
			return true
		}
	}
	return false
}

// unitRules are checked top to bottom; the first match wins. Prefix rules
// come first so "Geometry - Circles" never reaches the substring rules.
var unitRules = []unitRule{
	{unit: UnitAlgebra, prefix: "Algebra"},
	{unit: UnitArithmetic, prefix: "Arithmetic"},
	{unit: UnitGeometry, prefix: "Geometry"},
	{unit: UnitLRDI, prefix: "LRDI"},
	{unit: UnitModernMath, prefix: "Modern Math"},
	{unit: UnitNumberSystem, prefix: "Number System"},
	{unit: UnitAlgebra, contains: []string{"Progression", "Functions", "Modulus", "Inequalities", "Indices", "Minima", "Identities"}},
	{unit: UnitGeometry, contains: []string{"Trigonometry"}},
	{unit: UnitGeometry, contains: []string{"Conic Sections"}},
	{unit: UnitModernMath, contains: []string{"Logarithm", "Binomial"}},
}

// Categorize maps a topic label to its unit tag. Matching is case-sensitive;
// labels no rule claims are UnitOther.
func Categorize(label string) Unit {
	for _, rule := range unitRules {
		if rule.matches(label) {
			return rule.unit
		}
	}
	return UnitOther
}

type UnitProgress struct {
	Unit    Unit
	Done    int
	Total   int
	Percent int
}

// PercentByUnit reports progress for every unit that has at least one item,
// in Units order.
func PercentByUnit(items []Item) []UnitProgress {
	counts := map[Unit]*UnitProgress{}
	for _, item := range items {
		unit := Categorize(item.Label)
		p, ok := counts[unit]
		if !ok {
			p = &UnitProgress{Unit: unit}
			counts[unit] = p
		}
		p.Total++
		if item.Completed {
			p.Done++
		}
	}
	out := []UnitProgress{}
	for _, unit := range Units {
		if p, ok := counts[unit]; ok {
			p.Percent = Percent(p.Done, p.Total)
			out = append(out, *p)
		}
	}
	return out
}
