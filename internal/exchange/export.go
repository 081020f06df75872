package exchange

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("format must be 'csv', 'json' or 'yaml'")

// ParseFormat accepts csv, json, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Export writes inv to w in the given format, keeping iteration order.
func Export(w io.Writer, inv *inventory.Inventory, format Format) error {
	switch format {
	case FormatCSV:
		return exportCSV(w, inv)
	case FormatJSON:
		return exportJSON(w, inv)
	case FormatYAML:
		return exportYAML(w, inv)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func exportCSV(w io.Writer, inv *inventory.Inventory) error {
	csvWriter := csv.NewWriter(w)
	_ = csvWriter.Write([]string{"item", "quantity"})
	for _, it := range inv.Items() {
		_ = csvWriter.Write([]string{it.Name, strconv.Itoa(it.Quantity)})
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func exportJSON(w io.Writer, inv *inventory.Inventory) error {
	out, err := json.MarshalIndent(inv, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func exportYAML(w io.Writer, inv *inventory.Inventory) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, it := range inv.Items() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: it.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(it.Quantity)},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
