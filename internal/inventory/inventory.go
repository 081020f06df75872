package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Item is a single inventory entry.
type Item struct {
	Name     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Inventory maps item names to quantities. Iteration follows the order in
// which names were first inserted.
type Inventory struct {
	order []string
	qty   map[string]int
}

// New creates an empty Inventory.
func New() *Inventory {
	return &Inventory{
		order: []string{},
		qty:   map[string]int{},
	}
}

// FromItems builds an Inventory from items in the given order. Later
// duplicates overwrite earlier quantities without moving the name.
func FromItems(items ...Item) *Inventory {
	inv := New()
	for _, it := range items {
		inv.Set(it.Name, it.Quantity)
	}
	return inv
}

// Get returns the quantity of item and whether it is present.
func (inv *Inventory) Get(item string) (int, bool) {
	q, ok := inv.qty[item]
	return q, ok
}

// Set stores qty for item. New names are appended to the iteration order.
func (inv *Inventory) Set(item string, qty int) {
	if _, ok := inv.qty[item]; !ok {
		inv.order = append(inv.order, item)
	}
	inv.qty[item] = qty
}

// Delete removes item and reports whether it was present.
func (inv *Inventory) Delete(item string) bool {
	if _, ok := inv.qty[item]; !ok {
		return false
	}
	delete(inv.qty, item)
	for i, name := range inv.order {
		if name == item {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Names returns the item names in iteration order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.order))
	copy(names, inv.order)
	return names
}

// Items returns the entries in iteration order.
func (inv *Inventory) Items() []Item {
	items := make([]Item, len(inv.order))
	for i, name := range inv.order {
		items[i] = Item{Name: name, Quantity: inv.qty[name]}
	}
	return items
}

// Below returns the names whose quantity is strictly less than threshold.
func (inv *Inventory) Below(threshold int) []string {
	names := []string{}
	for _, name := range inv.order {
		if inv.qty[name] < threshold {
			names = append(names, name)
		}
	}
	return names
}

// TotalUnits sums every quantity.
func (inv *Inventory) TotalUnits() int {
	total := 0
	for _, q := range inv.qty {
		total += q
	}
	return total
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	return FromItems(inv.Items()...)
}

// MarshalJSON encodes the inventory as a JSON object keeping iteration order.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range inv.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(inv.qty[name]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of item -> integer quantity, keeping the
// key order found in data. On error the receiver is left untouched.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("inventory: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("inventory: expected a JSON object, got %v", tok)
	}

	decoded := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("inventory: %w", err)
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("inventory: item %q: %w", name, err)
		}
		qty, err := strconv.Atoi(string(raw))
		if err != nil {
			return fmt.Errorf("inventory: item %q: quantity %s is not an integer", name, raw)
		}
		decoded.Set(name, qty)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("inventory: unexpected data after JSON object")
	}

	*inv = *decoded
	return nil
}
