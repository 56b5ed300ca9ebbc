package arbor_test

import (
	"fmt"
	"log"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
)

// ExampleRuleSet_Expand grows one speculative tree and harvests the accepted values.
func ExampleRuleSet_Expand() {
	rules, err := dsl.New[int]().
		Grow("branch", dsl.Branch(func(x int) []int { return []int{x + 1, x + 2} })).
		Cut("too big", dsl.Prune("cap", func(x int, _ []int) bool { return x > 10 })).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	tree, err := rules.Expand(9, nil)
	if err != nil {
		log.Fatal(err)
	}

	for _, child := range tree.Children() {
		fmt.Printf("%d ended=%v rejected=%v\n", child.Payload(), child.Ended(), child.Rejection())
	}
	fmt.Println(tree.Harvest())
	// Output:
	// 10 ended=true rejected=
	// 11 ended=false rejected=too big (cap)
	// [10]
}

// ExampleRuleSet_Run commits one value per seed, keeping every accepted alternative.
func ExampleRuleSet_Run() {
	rules, err := dsl.New[int]().
		Grow("neighbours", dsl.Branch(func(x int) []int { return []int{x - 1, x, x + 1} })).
		Cut("no repeat", func(x int, history []int, _ domain.Params) ([]string, error) {
			// history ends with the seed; the committed value before it is the previous pick.
			if len(history) >= 2 && history[len(history)-2] == x {
				return []string{fmt.Sprint(x)}, nil
			}
			return nil, nil
		}).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	root, err := rules.Run([]int{1, 2}, nil)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range root.EnumeratePaths() {
		fmt.Println(path)
	}
	// Output:
	// [0 1]
	// [0 2]
	// [0 3]
	// [1 2]
	// [1 3]
	// [2 1]
	// [2 3]
}
