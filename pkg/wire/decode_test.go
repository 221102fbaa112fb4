package wire

import (
	"testing"
)

const countriesPage = `<?xml version="1.0" standalone="yes"?>
<getCountries>
  <result>
    <area>Europe</area>
    <countrycode>ad</countrycode>
    <languagecode>en</languagecode>
    <name>Andorra</name>
  </result>
  <result>
    <area>Middle East</area>
    <countrycode>ae</countrycode>
    <languagecode>en</languagecode>
    <name>United Arab Emirates</name>
  </result>
  <result>
    <area>Caribbean</area>
    <countrycode>ag</countrycode>
    <languagecode>en</languagecode>
    <name>Antigua &amp; Barbuda</name>
  </result>
</getCountries>
`

func TestDecodePage_MultipleRecords(t *testing.T) {
	records, err := DecodePage([]byte(countriesPage), "getCountries")
	if err != nil {
		t.Fatalf("DecodePage() failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Record count = %d, want 3", len(records))
	}

	if got := records[0].Field("countrycode"); got != "ad" {
		t.Errorf("records[0] countrycode = %q, want %q", got, "ad")
	}
	if got := records[0].Field("name"); got != "Andorra" {
		t.Errorf("records[0] name = %q, want %q", got, "Andorra")
	}
	if got := records[2].Field("name"); got != "Antigua & Barbuda" {
		t.Errorf("records[2] name = %q, want %q", got, "Antigua & Barbuda")
	}
}

func TestDecodePage_SingleRecord(t *testing.T) {
	// A one-record page arrives as a single mapping, not a list.
	payload := `<?xml version="1.0" standalone="yes"?>
<getCountries>
  <result>
    <countrycode>al</countrycode>
    <name>Albania</name>
  </result>
</getCountries>
`

	records, err := DecodePage([]byte(payload), "getCountries")
	if err != nil {
		t.Fatalf("DecodePage() failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Record count = %d, want 1", len(records))
	}
	if got := records[0].Field("name"); got != "Albania" {
		t.Errorf("name = %q, want %q", got, "Albania")
	}
}

func TestDecodePage_EmptyShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "no result element",
			payload: `<getCountries><meta>0</meta></getCountries>`,
		},
		{
			name:    "self-closed result",
			payload: `<getCountries><result/></getCountries>`,
		},
		{
			name:    "wrong root element",
			payload: `<error>unknown endpoint</error>`,
		},
		{
			name:    "empty root",
			payload: `<getCountries></getCountries>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := DecodePage([]byte(tt.payload), "getCountries")
			if err != nil {
				t.Fatalf("DecodePage() failed: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("Record count = %d, want 0", len(records))
			}
		})
	}
}

func TestDecodePage_MalformedXML(t *testing.T) {
	_, err := DecodePage([]byte(`<getCountries><result>`), "getCountries")
	if err == nil {
		t.Error("Expected error for malformed payload, got nil")
	}
}

func TestDecodePage_ScalarResult(t *testing.T) {
	payload := `<getCountries><result>nope</result></getCountries>`

	_, err := DecodePage([]byte(payload), "getCountries")
	if err == nil {
		t.Error("Expected error for scalar result, got nil")
	}
}

func TestDecodePage_NestedField(t *testing.T) {
	payload := `<getHotels>
  <result>
    <hotel_id>10001</hotel_id>
    <location>
      <latitude>41.38</latitude>
      <longitude>2.17</longitude>
    </location>
  </result>
</getHotels>
`

	records, err := DecodePage([]byte(payload), "getHotels")
	if err != nil {
		t.Fatalf("DecodePage() failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("Record count = %d, want 1", len(records))
	}

	loc := records[0].Child("location")
	if loc == nil {
		t.Fatal("Child(location) = nil, want nested record")
	}
	if got := loc.Field("latitude"); got != "41.38" {
		t.Errorf("latitude = %q, want %q", got, "41.38")
	}

	// Scalar accessors degrade cleanly on nested fields.
	if got := records[0].Field("location"); got != "" {
		t.Errorf("Field(location) = %q, want empty string", got)
	}
	if records[0].Child("hotel_id") != nil {
		t.Error("Child(hotel_id) should be nil for a scalar field")
	}
}

func TestRecord_Has(t *testing.T) {
	rec := Record{"name": "Andorra"}

	if !rec.Has("name") {
		t.Error("Has(name) = false, want true")
	}
	if rec.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
}
