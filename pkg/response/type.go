package response

import (
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date that marshals as DateFormat.
type Date civil.Date

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(civil.Date(d).In(time.UTC).Format(DateFormat))
}

// Clock is a wall-clock time that marshals as "HH:MM".
type Clock civil.Time

// MarshalJSON implements json.Marshaler for Clock.
func (t Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%02d:%02d", t.Hour, t.Minute))
}
