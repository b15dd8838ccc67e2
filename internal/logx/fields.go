package logx

import (
	"fmt"
	"time"
)

// EventKey names the field carrying a business event.
const EventKey = "event"

// Field is a single key-value pair.
type Field struct {
	Key   string
	Value any
}

func Any(key string, value any) Field                { return Field{Key: key, Value: value} }
func String(key, value string) Field                 { return Field{Key: key, Value: value} }
func Int(key string, value int) Field                { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field            { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field        { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field              { return Field{Key: key, Value: value} }
func Time(key string, value time.Time) Field         { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// ID stores the identifier's string form.
func ID(key string, id fmt.Stringer) Field {
	return Field{Key: key, Value: id.String()}
}

// Event tags the entry with a business event name such as "delivery_accepted".
func Event(name string) Field {
	return Field{Key: EventKey, Value: name}
}

// Err creates an "err" field holding the error message.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "err", Value: nil}
	}
	return Field{Key: "err", Value: err.Error()}
}
