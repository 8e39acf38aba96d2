package sections

import (
	"reflect"
	"testing"
)

func TestAppend_ReturnsIndex(t *testing.T) {
	var list []string

	list, idx := Append(list, "first")
	if idx != 0 {
		t.Errorf("first Append index = %d, expected 0", idx)
	}

	list, idx = Append(list, "second")
	if idx != 1 {
		t.Errorf("second Append index = %d, expected 1", idx)
	}
	if !reflect.DeepEqual(list, []string{"first", "second"}) {
		t.Errorf("list = %v", list)
	}
}

func TestUpdateAt(t *testing.T) {
	list := []int{1, 2, 3}

	if err := UpdateAt(list, 1, 20); err != nil {
		t.Fatalf("UpdateAt() error = %v", err)
	}
	if !reflect.DeepEqual(list, []int{1, 20, 3}) {
		t.Errorf("list = %v", list)
	}

	if err := UpdateAt(list, 3, 0); err == nil {
		t.Error("UpdateAt past end should error")
	}
	if err := UpdateAt(list, -1, 0); err == nil {
		t.Error("UpdateAt with negative index should error")
	}
}

func TestRemoveAt(t *testing.T) {
	list := []string{"a", "b", "c"}

	out, err := RemoveAt(list, 1)
	if err != nil {
		t.Fatalf("RemoveAt() error = %v", err)
	}
	if !reflect.DeepEqual(out, []string{"a", "c"}) {
		t.Errorf("RemoveAt() = %v", out)
	}

	if _, err := RemoveAt(list, 3); err == nil {
		t.Error("RemoveAt past end should error")
	}
	if _, err := RemoveAt([]string{}, 0); err == nil {
		t.Error("RemoveAt on empty list should error")
	}
}

// RemoveAt must not alias the input's backing array into the result in a
// way that lets later appends clobber the original.
func TestRemoveAt_DoesNotClobberOriginal(t *testing.T) {
	list := []string{"a", "b", "c", "d"}

	out, err := RemoveAt(list, 1)
	if err != nil {
		t.Fatalf("RemoveAt() error = %v", err)
	}
	if !reflect.DeepEqual(list, []string{"a", "b", "c", "d"}) {
		t.Errorf("original list mutated: %v", list)
	}
	if !reflect.DeepEqual(out, []string{"a", "c", "d"}) {
		t.Errorf("RemoveAt() = %v", out)
	}
}

func TestFilterComplete(t *testing.T) {
	list := []int{0, 1, 0, 2, 3, 0}
	out := FilterComplete(list, func(n int) bool { return n != 0 })

	if !reflect.DeepEqual(out, []int{1, 2, 3}) {
		t.Errorf("FilterComplete() = %v", out)
	}
}

func TestFilterComplete_Empty(t *testing.T) {
	out := FilterComplete([]string(nil), func(string) bool { return true })
	if out == nil {
		t.Error("FilterComplete should return an empty slice, not nil")
	}
	if len(out) != 0 {
		t.Errorf("FilterComplete() = %v, expected empty", out)
	}
}
