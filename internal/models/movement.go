package models

import "time"

// Movement records a stock change applied to an item.
type Movement struct {
	ID        int       `json:"id"`
	Item      string    `json:"item"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}
