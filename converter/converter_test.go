package converter

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTokenizeShapes(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{`S:LOAD 1 Load "Kitchen Lights"`, []string{"S:LOAD", "1", "Load", `"Kitchen Lights"`}},
		{`R:INVOKE 118 1 Load.GetLevel`, []string{"R:INVOKE", "118", "1", "Load.GetLevel"}},
		{`"She said ""hi"""`, []string{`"She said ""hi"""`}},
		{`{305419896 19088743}`, []string{"{305419896 19088743}"}},
		{`[1 2 3]`, []string{"[1 2 3]"}},
		{`  leading  and   multi   spaces  `, []string{"leading", "and", "multi", "spaces"}},
	}

	for _, c := range cases {
		got := Tokenize(c.line)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", c.line, got, c.want)
		}
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	cases := []string{"", "plain", `has "quotes" inside`, "Kitchen Lights"}
	for _, s := range cases {
		q := Quote(s)
		got := Unquote(q)
		if got != s {
			t.Errorf("Unquote(Quote(%q)) = %q", s, got)
		}
	}
}

func TestParseBoolAnyNonzero(t *testing.T) {
	cases := map[string]bool{"0": false, "1": true, "2": true, "-1": true}
	for tok, want := range cases {
		got, err := ParseBool(tok)
		if err != nil {
			t.Fatalf("ParseBool(%q): %v", tok, err)
		}
		if got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", tok, got, want)
		}
	}
}

func TestFixedPointDuality(t *testing.T) {
	dotted, err := ParseFixed("123.456")
	if err != nil {
		t.Fatal(err)
	}
	undotted, err := ParseFixed("123456")
	if err != nil {
		t.Fatal(err)
	}
	if !dotted.Equal(undotted) {
		t.Errorf("ParseFixed(%q) = %s, ParseFixed(%q) = %s, want equal", "123.456", dotted, "123456", undotted)
	}
	if got := EncodeFixed(dotted); got != "123.456" {
		t.Errorf("EncodeFixed = %q, want %q", got, "123.456")
	}
}

func TestFixedPointNegative(t *testing.T) {
	d, err := ParseFixed("-12.500")
	if err != nil {
		t.Fatal(err)
	}
	want := decimal.NewFromFloat(-12.5)
	if !d.Equal(want) {
		t.Errorf("ParseFixed(-12.500) = %s, want %s", d, want)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	original := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	tok := EncodeBytes(original)
	got, err := ParseBytes(tok)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("round trip = %v, want %v", got, original)
	}
}

func TestBytesRoundTripPadsToFour(t *testing.T) {
	original := []byte{1, 2, 3}
	tok := EncodeBytes(original)
	got, err := ParseBytes(tok)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v (zero-padded to 4 bytes)", got, want)
	}
}

func TestParseBytesEmpty(t *testing.T) {
	got, err := ParseBytes("{}")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("ParseBytes(%q) = %v, want empty", "{}", got)
	}
}

type thermostatMode int

const (
	modeOff thermostatMode = iota
	modeHeat
	modeCool
)

func TestEnumRegistrationRoundTrip(t *testing.T) {
	RegisterEnum(reflect.TypeOf(thermostatMode(0)), Enum{
		Names: map[int]string{
			int(modeOff):  "Off",
			int(modeHeat): "Heat",
			int(modeCool): "Cool",
		},
	})

	got, err := Deserialize("Heat", reflect.TypeOf(thermostatMode(0)))
	if err != nil {
		t.Fatal(err)
	}
	if got.(thermostatMode) != modeHeat {
		t.Errorf("Deserialize(%q) = %v, want %v", "Heat", got, modeHeat)
	}

	tok, err := Serialize(modeHeat)
	if err != nil {
		t.Fatal(err)
	}
	if tok != "1" {
		t.Errorf("Serialize(modeHeat) = %q, want %q (always numeric on write)", tok, "1")
	}

	numeric, err := Deserialize("2", reflect.TypeOf(thermostatMode(0)))
	if err != nil {
		t.Fatal(err)
	}
	if numeric.(thermostatMode) != modeCool {
		t.Errorf("Deserialize(%q) = %v, want %v", "2", numeric, modeCool)
	}
}

func TestUnregisteredNamedIntFallsBackToInt(t *testing.T) {
	type vid int
	got, err := Deserialize("118", reflect.TypeOf(vid(0)))
	if err != nil {
		t.Fatal(err)
	}
	if got.(vid) != vid(118) {
		t.Errorf("Deserialize(%q) = %v, want %v", "118", got, vid(118))
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	want := time.Unix(1735689600, 0).UTC()
	tok := EncodeDateTime(want)
	got, err := ParseDateTime(tok)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestStringRegistryRoundTrip(t *testing.T) {
	tok, err := Serialize("Kitchen Lights")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Deserialize(tok, reflect.TypeOf(""))
	if err != nil {
		t.Fatal(err)
	}
	if got.(string) != "Kitchen Lights" {
		t.Errorf("round trip = %q, want %q", got, "Kitchen Lights")
	}
}
