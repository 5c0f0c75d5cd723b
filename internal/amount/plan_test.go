package amount

import (
	"errors"
	"math"
	"testing"

	"github.com/hitoshi/randapi/internal/model"
)

func TestNewPlan_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		policy Policy
		want   Plan
	}{
		{"from one: exactly one is single", 1, FromOne, Plan{Count: 1, Single: true}},
		{"from one: three is array", 3, FromOne, Plan{Count: 3}},
		{"from one: fraction below one is one-element array", 0.5, FromOne, Plan{Count: 1}},
		{"from one: fractional amount rounds loop up", 1.5, FromOne, Plan{Count: 2}},
		{"above one: exactly one is single", 1, AboveOne, Plan{Count: 1, Single: true}},
		{"above one: fraction below one is single", 0.3, AboveOne, Plan{Count: 1, Single: true}},
		{"above one: two point seven loops three times", 2.7, AboveOne, Plan{Count: 3}},
		{"NaN is empty", math.NaN(), FromOne, Plan{Empty: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPlan(tt.amount, tt.policy, 100)
			if err != nil {
				t.Fatalf("NewPlan error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NewPlan(%v) = %+v, want %+v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestNewPlan_OutOfRange(t *testing.T) {
	for _, a := range []float64{0, -1, -0.5, math.Inf(-1)} {
		for _, p := range []Policy{FromOne, AboveOne} {
			_, err := NewPlan(a, p, 100)
			if !errors.Is(err, model.ErrOutOfRange) {
				t.Errorf("NewPlan(%v, %v) error = %v, want ErrOutOfRange", a, p, err)
			}
		}
	}
}

func TestNewPlan_TooLarge(t *testing.T) {
	for _, a := range []float64{101, math.Inf(1)} {
		_, err := NewPlan(a, FromOne, 100)
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Kind != model.KindTooLarge {
			t.Errorf("NewPlan(%v) error = %v, want TooLarge", a, err)
		}
	}
}

func TestNewPlan_ZeroMaxIsUnlimited(t *testing.T) {
	plan, err := NewPlan(20000, AboveOne, 0)
	if err != nil {
		t.Fatalf("NewPlan(20000) error = %v", err)
	}
	if plan.Count != 20000 || plan.Single {
		t.Errorf("NewPlan(20000) = %+v, want array of 20000", plan)
	}

	// 無限大はintに収まらないため上限なしでも拒否する
	var apiErr *model.APIError
	if _, err := NewPlan(math.Inf(1), AboveOne, 0); !errors.As(err, &apiErr) || apiErr.Kind != model.KindTooLarge {
		t.Errorf("NewPlan(+Inf) error = %v, want TooLarge", err)
	}
}

func TestRun_ArrayAssignsIndexes(t *testing.T) {
	got, err := Run(Plan{Count: 3}, func(i int) (int, error) { return i * 10, nil })
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	items, ok := got.([]int)
	if !ok {
		t.Fatalf("Run returned %T, want []int", got)
	}
	want := []int{0, 10, 20}
	if len(items) != len(want) {
		t.Fatalf("len = %d, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %d, want %d", i, items[i], want[i])
		}
	}
}

func TestRun_SingleReturnsBareValue(t *testing.T) {
	got, err := Run(Plan{Count: 1, Single: true}, func(i int) (string, error) { return "x", nil })
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if got != "x" {
		t.Errorf("Run = %#v, want %q", got, "x")
	}
}

func TestRun_EmptyReturnsNil(t *testing.T) {
	called := false
	got, err := Run(Plan{Empty: true}, func(i int) (int, error) {
		called = true
		return 0, nil
	})
	if err != nil || got != nil {
		t.Errorf("Run = (%v, %v), want (nil, nil)", got, err)
	}
	if called {
		t.Error("generator should not be called for an empty plan")
	}
}

func TestRun_StopsOnFirstError(t *testing.T) {
	calls := 0
	_, err := Run(Plan{Count: 5}, func(i int) (int, error) {
		calls++
		if i == 1 {
			return 0, model.ErrInvalidGender
		}
		return i, nil
	})
	if !errors.Is(err, model.ErrInvalidGender) {
		t.Errorf("Run error = %v, want ErrInvalidGender", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
