package http

import (
	"encoding/json"
	"fmt"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// Date accepts request dates as either RFC 3339 timestamps or bare
// YYYY-MM-DD strings. Stored values are full BSON dates either way.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}
