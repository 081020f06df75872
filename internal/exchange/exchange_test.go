package exchange

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "Quantity,Name\n10,apple\n 3 , banana\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	want := []Row{
		{Line: 2, Item: "apple", Quantity: "10"},
		{Line: 3, Item: "banana", Quantity: "3"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestReadCSV_InvalidHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("sku,count\nA1,3\n"))
	if !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("expected ErrInvalidHeader, got %v", err)
	}

	_, err = ReadCSV(strings.NewReader(""))
	if err == nil {
		t.Error("expected an error for an empty document")
	}
}

func TestImport(t *testing.T) {
	rows := []Row{
		{Line: 2, Item: "apple", Quantity: "10"},
		{Line: 3, Item: "", Quantity: "4"},
		{Line: 4, Item: "banana", Quantity: "-2"},
		{Line: 5, Item: "kiwi", Quantity: "ten"},
		{Line: 6, Item: "apple", Quantity: "5"},
	}

	tests := []struct {
		name     string
		mode     ImportMode
		initial  []inventory.Item
		expected []inventory.Item
	}{
		{
			name:     "Add mode",
			mode:     ModeAdd,
			initial:  []inventory.Item{{Name: "apple", Quantity: 1}},
			expected: []inventory.Item{{Name: "apple", Quantity: 16}},
		},
		{
			name:     "Replace mode",
			mode:     ModeReplace,
			initial:  []inventory.Item{{Name: "apple", Quantity: 1}},
			expected: []inventory.Item{{Name: "apple", Quantity: 5}},
		},
		{
			name:     "Replace mode keeps unlisted items",
			mode:     ModeReplace,
			initial:  []inventory.Item{{Name: "pear", Quantity: 3}, {Name: "apple", Quantity: 1}},
			expected: []inventory.Item{{Name: "pear", Quantity: 3}, {Name: "apple", Quantity: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := inventory.NewStore(inventory.FromItems(tt.initial...), nil)

			result := Import(store, rows, tt.mode)

			if result.Imported != 2 {
				t.Errorf("expected 2 imported rows, got %d", result.Imported)
			}
			lines := []int{}
			for _, e := range result.Errors {
				lines = append(lines, e.Line)
			}
			if diff := cmp.Diff([]int{3, 4, 5}, lines); diff != "" {
				t.Errorf("unexpected error lines (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expected, store.Inventory().Items()); diff != "" {
				t.Errorf("unexpected stock (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImport_ErrorDescriptions(t *testing.T) {
	store := inventory.NewStore(nil, nil)
	result := Import(store, []Row{
		{Line: 2, Item: "", Quantity: "1"},
		{Line: 3, Item: "pear", Quantity: "1.5"},
	}, ModeAdd)

	require.Len(t, result.Errors, 2)
	if result.Errors[0].Error() != "row 2: missing item" {
		t.Errorf("unexpected error %q", result.Errors[0].Error())
	}
	if result.Errors[1].Error() != `row 3: invalid quantity "1.5"` {
		t.Errorf("unexpected error %q", result.Errors[1].Error())
	}
}

func TestParseImportMode(t *testing.T) {
	for input, expected := range map[string]ImportMode{"": ModeAdd, "ADD": ModeAdd, "replace": ModeReplace} {
		mode, err := ParseImportMode(input)
		require.NoError(t, err)
		if mode != expected {
			t.Errorf("%q: expected %s, got %s", input, expected, mode)
		}
	}

	if _, err := ParseImportMode("merge"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestExport(t *testing.T) {
	inv := inventory.FromItems(
		inventory.Item{Name: "banana", Quantity: 20},
		inventory.Item{Name: "apple", Quantity: 7},
	)

	tests := []struct {
		format   Format
		expected string
	}{
		{format: FormatCSV, expected: "item,quantity\nbanana,20\napple,7\n"},
		{format: FormatJSON, expected: "{\n    \"banana\": 20,\n    \"apple\": 7\n}\n"},
		{format: FormatYAML, expected: "banana: 20\napple: 7\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(&buf, inv, tt.format))
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestExport_CSVRoundTrip(t *testing.T) {
	inv := inventory.FromItems(
		inventory.Item{Name: "red, ripe apple", Quantity: 3},
		inventory.Item{Name: "fig", Quantity: 9},
	)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, inv, FormatCSV))

	rows, err := ReadCSV(&buf)
	require.NoError(t, err)

	store := inventory.NewStore(nil, nil)
	result := Import(store, rows, ModeReplace)
	require.Empty(t, result.Errors)
	if diff := cmp.Diff(inv.Items(), store.Inventory().Items()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	if f != FormatYAML {
		t.Errorf("expected yaml, got %s", f)
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if err := Export(&bytes.Buffer{}, inventory.New(), Format("xml")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
