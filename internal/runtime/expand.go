package runtime

import (
	"github.com/aretw0/arbor/pkg/domain"
)

// Expand builds a speculative tree rooted at a fresh node holding seed.
// When prior is non-nil the seed node's history continues from it, but prior does not
// gain a child. On a rule error the partial tree is dropped and the error is returned as is.
func (e *Engine[T]) Expand(seed T, params domain.Params, prior *domain.Node[T]) (*domain.Node[T], error) {
	b := e.newBuild("expand", params)
	return b.expand(seed, prior)
}

func (b *build[T]) expand(seed T, prior *domain.Node[T]) (*domain.Node[T], error) {
	root := domain.Attach(prior, seed)
	if err := b.grow(root, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// grow applies the GrowRule at index level to node and recurses into the survivors.
// Every node at the same depth below the seed is grown by the same rule.
func (b *build[T]) grow(node *domain.Node[T], level int) error {
	rules := b.book.Grow
	if level >= len(rules) {
		return nil
	}
	rule := rules[level]
	last := level == len(rules)-1

	candidates, err := rule.Grow(node.Payload(), node.History(), b.params)
	if err != nil {
		b.logger.Error("grow rule failed", "rule", rule.Name, "error", err)
		return err
	}
	if b.hooks.OnGrow != nil {
		b.hooks.OnGrow(&domain.GrowEvent{
			EventBase:  b.base(domain.EventGrow, node.Depth()),
			Rule:       rule.Name,
			Payload:    node.Payload(),
			Candidates: len(candidates),
		})
	}

	for _, candidate := range candidates {
		child := node.Add(candidate)
		history := child.History()

		terminal := last
		if b.book.End != nil {
			terminal, err = b.book.End(candidate, history, b.params)
			if err != nil {
				b.logger.Error("termination predicate failed", "error", err)
				return err
			}
		}

		rejection, vetoedBy, err := b.cut(candidate, history)
		if err != nil {
			return err
		}
		if rejection != nil {
			child.Reject(rejection)
			b.logger.Debug("candidate rejected", "rule", vetoedBy, "payload", candidate, "reason", rejection.String())
			if b.hooks.OnCut != nil {
				b.hooks.OnCut(&domain.CutEvent{
					EventBase: b.base(domain.EventCut, child.Depth()),
					Rule:      vetoedBy,
					Payload:   candidate,
					Rejection: rejection,
				})
			}
			continue
		}

		if terminal {
			child.MarkEnded()
			continue
		}
		if err := b.grow(child, level+1); err != nil {
			return err
		}
	}
	return nil
}
