package compare_test

import (
	"testing"
	"testing/quick"

	"github.com/segmentio/linkedlist/compare"
)

func TestFunction(t *testing.T) {
	f := func(a, b int32) bool {
		c := compare.Function(a, b)
		switch {
		case a < b:
			return c < 0
		case a > b:
			return c > 0
		default:
			return c == 0
		}
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReverse(t *testing.T) {
	cmp := compare.Reverse(compare.Function[string])

	if c := cmp("a", "b"); c <= 0 {
		t.Errorf("wrong reversed comparison of a and b: got=%d want>0", c)
	}
	if c := cmp("b", "b"); c != 0 {
		t.Errorf("wrong reversed comparison of equal values: got=%d want=0", c)
	}
}
