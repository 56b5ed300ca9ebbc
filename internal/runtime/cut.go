package runtime

import "github.com/aretw0/arbor/pkg/domain"

// cut evaluates the CutRules in registration order. The first rule returning any note
// vetoes the candidate and no later rule is called for it.
func (b *build[T]) cut(candidate T, history []T) (domain.Rejection, string, error) {
	for _, rule := range b.book.Cut {
		notes, err := rule.Test(candidate, history, b.params)
		if err != nil {
			b.logger.Error("cut rule failed", "rule", rule.Reason, "error", err)
			return nil, "", err
		}
		if len(notes) > 0 {
			return domain.ComposeRejection(rule.Reason, notes), rule.Reason, nil
		}
	}
	return nil, "", nil
}
