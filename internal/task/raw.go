package task

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawTask is one task record as fetched from the backend, with field aliases
// already resolved. Numeric fields are pointers so "absent" stays
// distinguishable from zero; the normalization layer treats absent values as
// not-achieved rather than failing.
type RawTask struct {
	ID            string
	Title         string
	Kind          string
	SuccessText   string
	Deadline      string
	Goal          *float64
	CurrentCount  *float64
	Start         *float64
	LastValue     *float64
	LastValueDate string
	DoneToday     bool
	Achieved      *bool
}

// rawTaskWire mirrors every field spelling the deployed backends have used.
// Successive backend iterations renamed fields without versioning the
// payload, so the client accepts all spellings.
type rawTaskWire struct {
	ID            json.Number `json:"id"`
	TechnicalName string      `json:"technical_name"`

	TaskType string `json:"task_type"`
	Type     string `json:"type"`

	TileText  string `json:"tile_text"`
	TitleText string `json:"title_text"`
	Title     string `json:"title"`

	SuccessText string `json:"success_text"`
	// One backend iteration shipped with this misspelling.
	SucessText string `json:"sucess_text"`

	Deadline string `json:"deadline"`

	Goal         *float64 `json:"goal"`
	Current      *float64 `json:"current"`
	CurrentCount *float64 `json:"current_count"`
	Progress     *float64 `json:"progress"`

	StartValue  *float64 `json:"startvalue"`
	StartValue2 *float64 `json:"start_value"`
	Start       *float64 `json:"start"`

	CurrentValue *float64 `json:"current_value"`
	LastValue    *float64 `json:"last_value"`

	LastValueDate string `json:"last_value_date"`
	LastDate      string `json:"last_date"`

	DoneToday      *bool `json:"done_today"`
	CompletedToday *bool `json:"completed_today"`
	DoneTodayCamel *bool `json:"doneToday"`

	Achieved *bool `json:"achieved"`
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// UnmarshalJSON decodes a task record, collapsing the historical field
// aliases into one canonical shape.
func (r *RawTask) UnmarshalJSON(data []byte) error {
	var w rawTaskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	r.ID = firstString(w.TechnicalName, w.ID.String())
	r.Kind = firstString(w.TaskType, w.Type)
	r.Title = firstString(w.TileText, w.TitleText, w.Title, w.TechnicalName)
	r.SuccessText = firstString(w.SuccessText, w.SucessText)
	r.Deadline = w.Deadline

	r.Goal = w.Goal

	// Kind-dependent aliasing: "current" means the check-in count for
	// confirm tasks and the most recent logged value for numberDiff tasks.
	switch ParseKind(r.Kind) {
	case KindNumberDiff:
		r.LastValue = firstFloat(w.CurrentValue, w.Current, w.LastValue)
	default:
		r.CurrentCount = firstFloat(w.Current, w.CurrentCount, w.Progress)
		r.LastValue = firstFloat(w.CurrentValue, w.LastValue)
	}
	r.Start = firstFloat(w.StartValue, w.StartValue2, w.Start)
	r.LastValueDate = firstString(w.LastValueDate, w.LastDate)

	for _, b := range []*bool{w.DoneToday, w.CompletedToday, w.DoneTodayCamel} {
		if b != nil {
			r.DoneToday = *b
			break
		}
	}
	r.Achieved = w.Achieved

	return nil
}

// FormatNumber renders a value with two fixed decimals.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Undefined is the placeholder shown for values that were never logged.
const Undefined = "--"

// FormatSigned renders a value with two fixed decimals and an explicit sign,
// "+" for non-negative and "-" for negative. Deltas never display bare.
func FormatSigned(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// FormatCount renders a check-in count, dropping the decimals when the value
// is integral so confirm tiles read "2/5" rather than "2.00/5.00".
func FormatCount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return FormatNumber(v)
}
