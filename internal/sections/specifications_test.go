package sections

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseSpecifications_SortedRows(t *testing.T) {
	raw := `{"Weight":"2kg","Color":"Red"}`

	pairs := ParseSpecifications([]byte(raw))
	expected := []SpecPair{
		{Key: "Color", Value: "Red"},
		{Key: "Weight", Value: "2kg"},
	}

	if !reflect.DeepEqual(pairs, expected) {
		t.Errorf("ParseSpecifications() = %v, expected %v", pairs, expected)
	}
}

// Removing a row and saving yields a map without that key.
func TestSpecifications_RemoveRowRoundTrip(t *testing.T) {
	pairs := ParseSpecifications([]byte(`{"Weight":"2kg","Color":"Red"}`))

	// Remove the "Color" row.
	var remaining []SpecPair
	for _, p := range pairs {
		if p.Key != "Color" {
			remaining = append(remaining, p)
		}
	}

	out, err := SerializeSpecifications(remaining)
	if err != nil {
		t.Fatalf("SerializeSpecifications() error = %v", err)
	}

	var stored map[string]string
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}
	if !reflect.DeepEqual(stored, map[string]string{"Weight": "2kg"}) {
		t.Errorf("serialized map = %v, expected {Weight:2kg}", stored)
	}
}

func TestSerializeSpecifications_DropsBlankKeys(t *testing.T) {
	pairs := []SpecPair{
		{Key: "Pressure rating", Value: "PN40"},
		{Key: "", Value: "orphan"},
		{Key: "  ", Value: "also orphan"},
	}

	out, err := SerializeSpecifications(pairs)
	if err != nil {
		t.Fatalf("SerializeSpecifications() error = %v", err)
	}

	var stored map[string]string
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("serialized %d entries, expected 1: %v", len(stored), stored)
	}
	if stored["Pressure rating"] != "PN40" {
		t.Errorf("stored = %v", stored)
	}
}

func TestSerializeSpecifications_DuplicateKeyLastWins(t *testing.T) {
	pairs := []SpecPair{
		{Key: "Material", Value: "Carbon steel"},
		{Key: "Material", Value: "Stainless steel"},
	}

	out, err := SerializeSpecifications(pairs)
	if err != nil {
		t.Fatalf("SerializeSpecifications() error = %v", err)
	}

	var stored map[string]string
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}
	if stored["Material"] != "Stainless steel" {
		t.Errorf("Material = %q, expected last row to win", stored["Material"])
	}
}

func TestParseSpecifications_Malformed(t *testing.T) {
	tests := []string{
		`["a","b"]`,
		`"scalar"`,
		``,
		`{"nested": {"x": 1}}`,
	}

	for _, raw := range tests {
		pairs := ParseSpecifications([]byte(raw))
		if len(pairs) != 0 {
			t.Errorf("ParseSpecifications(%q) = %v, expected empty", raw, pairs)
		}
	}
}
