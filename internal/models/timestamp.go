package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// timeLayouts covers the formats seen in documents written by earlier
// migrations and manual inserts, where date fields were stored as strings.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that decodes from either a BSON datetime or a
// string-typed date. Every temporal field on a persisted entity uses this
// type, so no caller can ever observe a string-typed date.
type Timestamp struct {
	time.Time
}

func Now() Timestamp {
	return Timestamp{time.Now().UTC().Truncate(time.Millisecond)}
}

// ParseFlexible parses a date string against the known layouts.
func ParseFlexible(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if t.Time.IsZero() {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(t.Time)
}

func (t *Timestamp) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}

	switch bt {
	case bsontype.DateTime:
		t.Time = rv.Time().UTC()
		return nil
	case bsontype.String:
		parsed, ok := ParseFlexible(rv.StringValue())
		if !ok {
			return fmt.Errorf("timestamp: unparseable date string %q", rv.StringValue())
		}
		t.Time = parsed.UTC()
		return nil
	case bsontype.Null, bsontype.Undefined:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("timestamp: cannot decode BSON type %s", bt)
	}
}
