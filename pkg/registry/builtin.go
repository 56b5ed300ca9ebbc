package registry

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Default returns a registry preloaded with the built-in integer rules.
func Default() *Registry {
	r := NewRegistry()

	r.RegisterGrow("identity", func(args map[string]any) (domain.GrowFunc[int], error) {
		if err := decode(args, &struct{}{}); err != nil {
			return nil, err
		}
		return func(x int, _ []int, _ domain.Params) ([]int, error) {
			return []int{x}, nil
		}, nil
	})

	r.RegisterGrow("add", func(args map[string]any) (domain.GrowFunc[int], error) {
		var a struct {
			Steps []int `arg:"steps"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if len(a.Steps) == 0 {
			return nil, fmt.Errorf("steps must not be empty")
		}
		return func(x int, _ []int, _ domain.Params) ([]int, error) {
			out := make([]int, len(a.Steps))
			for i, s := range a.Steps {
				out[i] = x + s
			}
			return out, nil
		}, nil
	})

	r.RegisterGrow("mul", func(args map[string]any) (domain.GrowFunc[int], error) {
		var a struct {
			Factors []int `arg:"factors"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if len(a.Factors) == 0 {
			return nil, fmt.Errorf("factors must not be empty")
		}
		return func(x int, _ []int, _ domain.Params) ([]int, error) {
			out := make([]int, len(a.Factors))
			for i, f := range a.Factors {
				out[i] = x * f
			}
			return out, nil
		}, nil
	})

	r.RegisterGrow("span", func(args map[string]any) (domain.GrowFunc[int], error) {
		var a struct {
			Min int `arg:"min"`
			Max int `arg:"max"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if a.Min > a.Max {
			return nil, fmt.Errorf("min %d is greater than max %d", a.Min, a.Max)
		}
		return func(x int, _ []int, _ domain.Params) ([]int, error) {
			out := make([]int, 0, a.Max-a.Min+1)
			for d := a.Min; d <= a.Max; d++ {
				out = append(out, x+d)
			}
			return out, nil
		}, nil
	})

	r.RegisterCut("max", limitCut(func(x, limit int) bool { return x > limit }, "> %d"))
	r.RegisterCut("min", limitCut(func(x, limit int) bool { return x < limit }, "< %d"))

	r.RegisterCut("even", parityCut(0))
	r.RegisterCut("odd", parityCut(1))

	r.RegisterCut("repeat", func(args map[string]any) (domain.CutFunc[int], error) {
		if err := decode(args, &struct{}{}); err != nil {
			return nil, err
		}
		return func(x int, history []int, _ domain.Params) ([]string, error) {
			if len(history) > 0 && history[len(history)-1] == x {
				return []string{fmt.Sprintf("repeats %d", x)}, nil
			}
			return nil, nil
		}, nil
	})

	r.RegisterCut("leap", func(args map[string]any) (domain.CutFunc[int], error) {
		var a struct {
			Max int `arg:"max"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		return func(x int, history []int, _ domain.Params) ([]string, error) {
			if len(history) == 0 {
				return nil, nil
			}
			last := history[len(history)-1]
			if d := abs(x - last); d > a.Max {
				return []string{fmt.Sprintf("%d -> %d", last, x)}, nil
			}
			return nil, nil
		}, nil
	})

	r.RegisterCut("param_max", func(args map[string]any) (domain.CutFunc[int], error) {
		var a struct {
			Key string `arg:"key"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if a.Key == "" {
			return nil, fmt.Errorf("key must not be empty")
		}
		return func(x int, _ []int, params domain.Params) ([]string, error) {
			raw, ok := params[a.Key]
			if !ok {
				return nil, fmt.Errorf("missing param %q", a.Key)
			}
			var p struct {
				Limit int `arg:"limit"`
			}
			if err := decode(map[string]any{"limit": raw}, &p); err != nil {
				return nil, fmt.Errorf("param %q: %w", a.Key, err)
			}
			if x > p.Limit {
				return []string{fmt.Sprintf("%s=%d", a.Key, p.Limit)}, nil
			}
			return nil, nil
		}, nil
	})

	r.RegisterEnd("always", func(args map[string]any) (domain.EndFunc[int], error) {
		if err := decode(args, &struct{}{}); err != nil {
			return nil, err
		}
		return func(int, []int, domain.Params) (bool, error) { return true, nil }, nil
	})

	r.RegisterEnd("never", func(args map[string]any) (domain.EndFunc[int], error) {
		if err := decode(args, &struct{}{}); err != nil {
			return nil, err
		}
		return func(int, []int, domain.Params) (bool, error) { return false, nil }, nil
	})

	r.RegisterEnd("reach", func(args map[string]any) (domain.EndFunc[int], error) {
		var a struct {
			Target int `arg:"target"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		return func(x int, _ []int, _ domain.Params) (bool, error) { return x >= a.Target, nil }, nil
	})

	return r
}

func limitCut(over func(x, limit int) bool, note string) CutFactory {
	return func(args map[string]any) (domain.CutFunc[int], error) {
		var a struct {
			Limit *int `arg:"limit"`
		}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if a.Limit == nil {
			return nil, fmt.Errorf("limit is required")
		}
		limit := *a.Limit
		return func(x int, _ []int, _ domain.Params) ([]string, error) {
			if over(x, limit) {
				return []string{fmt.Sprintf(note, limit)}, nil
			}
			return nil, nil
		}, nil
	}
}

func parityCut(rem int) CutFactory {
	return func(args map[string]any) (domain.CutFunc[int], error) {
		if err := decode(args, &struct{}{}); err != nil {
			return nil, err
		}
		return func(x int, _ []int, _ domain.Params) ([]string, error) {
			if abs(x%2) == rem {
				return []string{fmt.Sprint(x)}, nil
			}
			return nil, nil
		}, nil
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
