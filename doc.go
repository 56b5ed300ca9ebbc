/*
Package arbor is a constrained generative tree-search engine.

Starting from a seed value, it expands candidate successors through an ordered list of
grow rules, vetoes illegal candidates through an ordered list of cut rules and harvests the
surviving terminal values. Rejected branches are kept in the tree as tombstones rather than
removed, so a finished tree explains why every alternative was discarded.

# Concept

A RuleSet is built once and never changes. It exposes two entry points:

  - Expand builds one speculative tree from one seed without committing anything.
  - Run chains Expand and Harvest across a sequence of seeds. Every harvested value of a
    stage is committed as fact and the next seed is expanded beneath it, with the committed
    values available to the rules as history.

Payloads are opaque: the engine never inspects them, it only forwards them to the rules.

# Usage

	rules, err := dsl.New[int]().
		Grow("branch", func(x int, _ []int, _ domain.Params) ([]int, error) {
			return []int{x + 1, x + 2}, nil
		}).
		Cut("too big", func(x int, _ []int, _ domain.Params) ([]string, error) {
			if x > 10 {
				return []string{"cap"}, nil
			}
			return nil, nil
		}).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	tree, err := rules.Expand(9, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tree.Harvest()) // [10]

Errors returned by rule functions abort the build and are returned unchanged; rejections
are data recorded on the tree, never errors.
*/
package arbor
