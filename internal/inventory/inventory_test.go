package inventory

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInventory_InsertionOrder(t *testing.T) {
	inv := New()
	inv.Set("pear", 1)
	inv.Set("apple", 2)
	inv.Set("fig", 3)
	inv.Set("pear", 9)
	inv.Delete("apple")
	inv.Set("apple", 4)

	want := []string{"pear", "fig", "apple"}
	if diff := cmp.Diff(want, inv.Names()); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
	if q, _ := inv.Get("pear"); q != 9 {
		t.Errorf("expected pear 9, got %d", q)
	}
	if inv.Delete("ghost") {
		t.Error("deleting an absent item must report false")
	}
}

func TestInventory_MarshalJSON(t *testing.T) {
	inv := FromItems(Item{"zucchini", 1}, Item{"apple", 7}, Item{`say "hi"`, 2})

	data, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	expected := `{"zucchini":1,"apple":7,"say \"hi\"":2}`
	if string(data) != expected {
		t.Errorf("expected %s, got %s", expected, data)
	}

	empty, _ := json.Marshal(New())
	if string(empty) != "{}" {
		t.Errorf("expected {}, got %s", empty)
	}
}

func TestInventory_UnmarshalJSON(t *testing.T) {
	var inv Inventory
	if err := json.Unmarshal([]byte(`{"banana": 20, "apple": 7, "banana": 3}`), &inv); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	want := []Item{{"banana", 3}, {"apple", 7}}
	if diff := cmp.Diff(want, inv.Items()); diff != "" {
		t.Errorf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestInventory_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Truncated", input: `{not json`},
		{name: "Empty", input: ``},
		{name: "Array", input: `[1, 2]`},
		{name: "Null", input: `null`},
		{name: "String quantity", input: `{"apple": "7"}`},
		{name: "Float quantity", input: `{"apple": 7.5}`},
		{name: "Nested object", input: `{"apple": {"qty": 1}}`},
		{name: "Trailing data", input: `{"apple": 1} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := FromItems(Item{"kept", 1})
			if err := inv.UnmarshalJSON([]byte(tt.input)); err == nil {
				t.Fatal("expected an error")
			}
			if diff := cmp.Diff([]Item{{"kept", 1}}, inv.Items()); diff != "" {
				t.Errorf("receiver modified on error (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInventory_Clone(t *testing.T) {
	inv := FromItems(Item{"apple", 1})
	c := inv.Clone()
	c.Set("apple", 50)

	if q, _ := inv.Get("apple"); q != 1 {
		t.Errorf("clone shares state with original")
	}
}

func TestInventory_TotalUnits(t *testing.T) {
	inv := FromItems(Item{"a", 2}, Item{"b", 10}, Item{"c", 4})
	if got := inv.TotalUnits(); got != 16 {
		t.Errorf("expected 16, got %d", got)
	}
}
