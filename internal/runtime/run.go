package runtime

import (
	"github.com/aretw0/arbor/pkg/domain"
)

// Run chains Expand and Harvest across seeds, starting from a fresh virtual root.
// Each harvested payload of a stage is committed as a child of the current root and the
// remaining seeds are run beneath it. On a rule error nothing is returned.
func (e *Engine[T]) Run(seeds []T, params domain.Params) (*domain.Node[T], error) {
	b := e.newBuild("run", params)
	root := domain.NewRoot[T]()
	if err := b.run(root, seeds); err != nil {
		return nil, err
	}
	return root, nil
}

func (b *build[T]) run(root *domain.Node[T], seeds []T) error {
	if len(seeds) == 0 {
		return nil
	}
	seed, rest := seeds[0], seeds[1:]
	depth := root.Depth()

	tree, err := b.expand(seed, root)
	if err != nil {
		return err
	}
	harvested := tree.Harvest()
	b.logger.Debug("stage expanded", "seed", seed, "depth", depth, "harvested", len(harvested))

	if len(harvested) == 0 {
		root.Reject(domain.Rejection{domain.ReasonAllChildrenRejected})
		b.logger.Warn("stage exhausted", "seed", seed, "depth", depth)
		if b.hooks.OnExhausted != nil {
			b.hooks.OnExhausted(&domain.StageEvent{
				EventBase: b.base(domain.EventExhausted, depth),
				Seed:      seed,
			})
		}
		return nil
	}

	for _, payload := range harvested {
		committed := root.Add(payload)
		committed.MarkEnded()
		if b.hooks.OnCommit != nil {
			b.hooks.OnCommit(&domain.StageEvent{
				EventBase: b.base(domain.EventCommit, depth+1),
				Seed:      seed,
				Payload:   payload,
			})
		}
		if err := b.run(committed, rest); err != nil {
			return err
		}
	}
	return nil
}
