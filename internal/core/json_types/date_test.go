package json_types

import (
	"testing"
	"time"
)

func TestDateTime_UnmarshalRFC3339(t *testing.T) {
	var parsed DateTime
	if err := parsed.UnmarshalJSON([]byte(`"2024-01-15T09:00:00Z"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	want := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	if !parsed.Date.Equal(want) {
		t.Fatalf("got %v, want %v", parsed.Date, want)
	}
}

func TestDateTime_UnmarshalWithoutTimezoneIsLocal(t *testing.T) {
	var parsed DateTime
	if err := parsed.UnmarshalJSON([]byte(`"2024-01-15T09:00:00"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	want := time.Date(2024, 1, 15, 9, 0, 0, 0, Location())
	if !parsed.Date.Equal(want) {
		t.Fatalf("got %v, want %v", parsed.Date, want)
	}
}

func TestDateTime_UnmarshalDateOnly(t *testing.T) {
	var parsed DateTime
	if err := parsed.UnmarshalJSON([]byte(`"2024-01-15"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	want := time.Date(2024, 1, 15, 0, 0, 0, 0, Location())
	if !parsed.Date.Equal(want) {
		t.Fatalf("got %v, want %v", parsed.Date, want)
	}
}

func TestDateTime_UnmarshalInvalid(t *testing.T) {
	var parsed DateTime
	if err := parsed.UnmarshalJSON([]byte(`"15/01/2024"`)); err == nil {
		t.Fatal("expected an error for unsupported format")
	}
}

func TestDateTimeOrEmpty_Null(t *testing.T) {
	var parsed DateTimeOrEmpty
	if err := parsed.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("UnmarshalJSON(null): %v", err)
	}
	if !parsed.Date.IsZero() {
		t.Fatalf("null must leave zero value, got %v", parsed.Date)
	}

	data, err := parsed.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != "null" {
		t.Fatalf("zero value must marshal to null, got %s", data)
	}
}

func TestDate_KeyAndJSON(t *testing.T) {
	var parsed Date
	if err := parsed.UnmarshalJSON([]byte(`"2024-01-15"`)); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if parsed.Key() != "2024-01-15" {
		t.Fatalf("got key %q, want 2024-01-15", parsed.Key())
	}

	data, err := parsed.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"2024-01-15"` {
		t.Fatalf("got %s, want \"2024-01-15\"", data)
	}
}
