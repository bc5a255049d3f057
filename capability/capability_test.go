package capability

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadParseCategoryStatus(t *testing.T) {
	field, value, err := Load{}.ParseCategoryStatus([]string{"42.500"})
	if err != nil {
		t.Fatal(err)
	}
	if field != "Level" || value.(float64) != 42.5 {
		t.Errorf("got (%s, %v), want (Level, 42.5)", field, value)
	}
}

func TestLoadParseObjectStatus(t *testing.T) {
	field, value, err := Load{}.ParseObjectStatus("Load.GetLevel", []string{"42500"})
	if err != nil {
		t.Fatal(err)
	}
	if field != "Level" || value.(float64) != 42.5 {
		t.Errorf("got (%s, %v), want (Level, 42.5)", field, value)
	}
}

func TestBlindParseObjectStatusGetBlindState(t *testing.T) {
	field, value, err := Blind{}.ParseObjectStatus("Blind.GetBlindState", []string{"1", "0", "100000", "5000", "123456"})
	if err != nil {
		t.Fatal(err)
	}
	state, ok := value.(BlindState)
	if field != "BlindState" || !ok {
		t.Fatalf("got (%s, %T), want (BlindState, capability.BlindState)", field, value)
	}
	if !state.IsMoving || !state.EndPos.Equal(decimal.NewFromInt(100)) {
		t.Errorf("state = %+v", state)
	}
}

func TestButtonParseCategoryStatus(t *testing.T) {
	field, value, err := Button{}.ParseCategoryStatus([]string{"PRESS"})
	if err != nil {
		t.Fatal(err)
	}
	if field != "State" || value.(bool) != true {
		t.Errorf("got (%s, %v), want (State, true)", field, value)
	}

	if _, _, err := (Button{}).ParseCategoryStatus([]string{"SIDEWAYS"}); err == nil {
		t.Error("expected error for invalid button state")
	}
}

func TestTaskParseObjectStatus(t *testing.T) {
	field, value, err := Task{}.ParseObjectStatus("Task.IsRunning", []string{"1"})
	if err != nil {
		t.Fatal(err)
	}
	if field != "IsRunning" || value.(bool) != true {
		t.Errorf("got (%s, %v), want (IsRunning, true)", field, value)
	}
}

func TestThermostatModeRoundTrip(t *testing.T) {
	mode, err := parseOperationMode("Heat")
	if err != nil {
		t.Fatal(err)
	}
	if mode != OperationHeat {
		t.Errorf("mode = %v, want OperationHeat", mode)
	}

	mode, err = parseOperationMode("2")
	if err != nil {
		t.Fatal(err)
	}
	if mode != OperationHeat {
		t.Errorf("mode = %v, want OperationHeat", mode)
	}
}
