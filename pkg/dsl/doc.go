/*
Package dsl provides a fluent Go builder for assembling Arbor rule sets.

Rules are plain typed functions. A grow rule "branches" by returning successors and a cut
rule "prunes" by returning notes; there is no implicit evaluation context.

Example usage:

	rules, err := dsl.New[int]().
		Name("steps").
		Grow("step", dsl.Branch(func(x int) []int { return []int{x + 1, x + 2} })).
		Cut("too big", dsl.Prune("cap", func(x int, _ []int) bool { return x > 10 })).
		EndWhen(dsl.Always[int]()).
		Build()

The resulting *arbor.RuleSet is immutable and can be reused for any number of
Expand and Run calls.
*/
package dsl
