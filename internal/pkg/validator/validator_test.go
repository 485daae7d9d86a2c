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

func TestIsValidNIP(t *testing.T) {
	valid := []string{"198001012005011001", "12345678", "1980010120"}
	invalid := []string{"1234567", "1980010120050110011", "19800101A", "", " 12345678"}
	for _, nip := range valid {
		if !IsValidNIP(nip) {
			t.Errorf("IsValidNIP(%q) = false, want true", nip)
		}
	}
	for _, nip := range invalid {
		if IsValidNIP(nip) {
			t.Errorf("IsValidNIP(%q) = true, want false", nip)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-31"); !ok {
		t.Errorf("IsValidDate(2025-07-31) = false, want true")
	}
	for _, d := range []string{"2025-02-30", "31-07-2025", "2025/07/31", ""} {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	got, ok := IsValidYearMonth("2025-07")
	if !ok || got.Year() != 2025 || got.Month() != 7 {
		t.Errorf("IsValidYearMonth(2025-07) = %v, %v", got, ok)
	}
	for _, s := range []string{"2025-13", "07-2025", "2025-7-1", ""} {
		if _, ok := IsValidYearMonth(s); ok {
			t.Errorf("IsValidYearMonth(%q) = true, want false", s)
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

type structSample struct {
	NIP   string `json:"nip" validate:"required,numeric"`
	Role  string `json:"role" validate:"oneof=Dosen Kajur Admin"`
	Quota int    `json:"quota" validate:"gte=0"`
	Note  string `validate:"max=3"`
}

func TestStruct(t *testing.T) {
	if errs := Struct(&structSample{NIP: "123", Role: "Dosen"}); errs != nil {
		t.Errorf("Struct(valid) = %v, want nil", errs)
	}

	errs := Struct(&structSample{Role: "Owner", Quota: -1, Note: "long"})
	got := errs.ToMap()
	want := map[string]string{
		"nip":   "nip is required",
		"role":  "role must be one of [Dosen Kajur Admin]",
		"quota": "quota must be greater than or equal to 0",
		"Note":  "Note must not exceed 3",
	}
	if len(got) != len(want) {
		t.Fatalf("Struct() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Struct()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nip", Message: "invalid"},
		{Field: "password", Message: "required"},
	}
	got := errs.Error()
	want := "nip: invalid; password: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nip", Message: "invalid"},
		{Field: "password", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"nip": "invalid", "password": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
