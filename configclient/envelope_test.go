package configclient

import "testing"

func TestBuildRequestWrapsCallInInterfaceAndMethod(t *testing.T) {
	type call struct {
		Handle int `xml:"call"`
	}

	got, err := buildRequest("IConfiguration", "CloseFilter", call{Handle: 42})
	if err != nil {
		t.Fatal(err)
	}

	want := "<IConfiguration><CloseFilter><call>42</call></CloseFilter></IConfiguration>"
	if got != want {
		t.Errorf("buildRequest = %q, want %q", got, want)
	}
}

func TestBuildRequestNilCall(t *testing.T) {
	got, err := buildRequest("IIntrospection", "GetVersion", nil)
	if err != nil {
		t.Fatal(err)
	}

	want := "<IIntrospection><GetVersion></GetVersion></IIntrospection>"
	if got != want {
		t.Errorf("buildRequest = %q, want %q", got, want)
	}
}

func TestExtractMethodLocatesNestedElement(t *testing.T) {
	response := []byte(`<IConfiguration><OpenFilter><call>42</call><return>7</return></OpenFilter></IConfiguration>`)

	var result struct {
		Handle int `xml:"return"`
	}
	if err := extractMethod(response, "IConfiguration", "OpenFilter", &result); err != nil {
		t.Fatal(err)
	}
	if result.Handle != 7 {
		t.Errorf("Handle = %d, want 7", result.Handle)
	}
}

func TestExtractMethodMissingElement(t *testing.T) {
	response := []byte(`<IConfiguration><SomeOtherMethod></SomeOtherMethod></IConfiguration>`)

	var result struct {
		Handle int `xml:"return"`
	}
	if err := extractMethod(response, "IConfiguration", "OpenFilter", &result); err == nil {
		t.Error("expected error for missing <OpenFilter> element, got nil")
	}
}
