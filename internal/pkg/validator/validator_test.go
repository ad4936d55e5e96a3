package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"01-2025", "12-1999", "09-2024"}
	invalid := []string{"13-2025", "00-2025", "1-2025", "2025-01", "01/2025", "012025", ""}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestIsValidEmpID(t *testing.T) {
	valid := []string{"E-1001", "1001", "amer.k_1"}
	invalid := []string{"", "emp 1", "id@1"}
	for _, id := range valid {
		if !IsValidEmpID(id) {
			t.Errorf("IsValidEmpID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmpID(id) {
			t.Errorf("IsValidEmpID(%q) = true, want false", id)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "invalid"},
		{Field: "emp_id", Message: "required"},
	}
	got := errs.Error()
	want := "month: invalid; emp_id: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "invalid"},
		{Field: "emp_id", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"month": "invalid", "emp_id": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
