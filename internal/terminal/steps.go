package terminal

import "fmt"

// StepCounter reports migration progress as "[n/total]" lines.
// It is passed by pointer through the pipeline; there is no package-level
// counter state, so two concurrent runs cannot interleave their numbering.
type StepCounter struct {
	total int
	done  int
}

// NewStepCounter creates a counter for a run with the given number of steps.
func NewStepCounter(total int) *StepCounter {
	return &StepCounter{total: total}
}

// Step advances the counter and prints the step label.
// It returns the step number just announced.
func (c *StepCounter) Step(label string) int {
	c.done++
	fmt.Printf("\n%s[%d/%d]%s %s%s%s\n", Cyan, c.done, c.total, Reset, Bold, label, Reset)
	return c.done
}

// Done returns how many steps have been announced so far.
func (c *StepCounter) Done() int {
	return c.done
}

// Total returns the planned number of steps.
func (c *StepCounter) Total() int {
	return c.total
}
