package scwb

import (
	"math"
	"strconv"
)

// DefaultFactor is the column-to-beam strength ratio required at a special moment frame joint.
// NSCP 2015 Section 418.7.3.2: ΣMnc >= (6/5) ΣMnb
const DefaultFactor = 1.2

// Verdict messages
const (
	MessageSatisfied  = "Strong Column Weak Beam Satisfied"
	MessageWeakColumn = "WARNING: Weak Column Detected"
)

// Checker evaluates the strong column weak beam condition at a joint
type Checker struct {
	factor float64
}

// NewChecker creates a checker that applies factor to the beam capacities of every joint
func NewChecker(factor float64) *Checker {
	return &Checker{factor: factor}
}

// Factor returns the safety factor fixed at construction
func (c *Checker) Factor() float64 {
	return c.factor
}

// Result holds the outcome of a single joint check
type Result struct {
	SumMC      float64 // ΣMnc - sum of column nominal moment capacities (kN-m)
	SumMB      float64 // ΣMnb - sum of beam nominal moment capacities (kN-m)
	RequiredMC float64 // factor × ΣMnb (kN-m)
	Ratio      float64 // ΣMnc / ΣMnb, +Inf when ΣMnb is zero
	IsSafe     bool
	Message    string
}

// Check evaluates a joint given the summed column and beam moment capacities.
// Inputs are not validated; negative moments are checked as given.
func (c *Checker) Check(sumMC, sumMB float64) Result {
	required := c.factor * sumMB

	var ratio float64
	if sumMB == 0 {
		ratio = math.Inf(1)
	} else {
		ratio = sumMC / sumMB
	}

	safe := sumMC >= required
	msg := MessageWeakColumn
	if safe {
		msg = MessageSatisfied
	}

	return Result{
		SumMC:      sumMC,
		SumMB:      sumMB,
		RequiredMC: required,
		Ratio:      ratio,
		IsSafe:     safe,
		Message:    msg,
	}
}

// FormatRatio renders the capacity ratio for tabular output
func (r Result) FormatRatio() string {
	return FormatFloat(r.Ratio)
}

// FormatFloat writes v in its shortest decimal form, with "inf" and "-inf" for infinities
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
