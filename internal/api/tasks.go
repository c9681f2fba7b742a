package api

import (
	"encoding/json"
	"fmt"
	"time"

	"taskdeck/internal/task"
)

// TaskList is one fetched snapshot of the task list.
type TaskList struct {
	// Today is the backend's idea of the current calendar date. When the
	// payload does not carry it, the client substitutes the local date.
	Today time.Time
	Tasks []task.RawTask
}

// taskListWire is the envelope shape `{today, tasks}`; older backends return
// a bare array instead.
type taskListWire struct {
	Today string         `json:"today"`
	Tasks []task.RawTask `json:"tasks"`
}

// FetchTasks retrieves the full task list. Both payload shapes are accepted:
// an object `{today: "YYYY-MM-DD", tasks: [...]}` and a bare array.
func (c *Client) FetchTasks() (TaskList, error) {
	var raw json.RawMessage
	if err := c.Get("/api/tasks", &raw); err != nil {
		return TaskList{}, fmt.Errorf("failed to get tasks: %w", err)
	}
	return decodeTaskList(raw)
}

func decodeTaskList(raw json.RawMessage) (TaskList, error) {
	list := TaskList{Today: localMidnight(time.Now())}

	var bare []task.RawTask
	if err := json.Unmarshal(raw, &bare); err == nil {
		list.Tasks = bare
		return list, nil
	}

	var wire taskListWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return TaskList{}, fmt.Errorf("failed to decode task list: %w", err)
	}
	list.Tasks = wire.Tasks
	if wire.Today != "" {
		if d, err := time.ParseInLocation("2006-01-02", wire.Today, time.Local); err == nil {
			list.Today = d
		}
	}
	return list, nil
}

func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// confirmRequest is the payload for confirm-kind commits.
type confirmRequest struct {
	TechnicalName string `json:"technical_name"`
	Value         bool   `json:"value"`
	Date          string `json:"date"`
}

// Confirm records a yes/no answer for a confirm-kind task. A negative answer
// is a real committed answer, saved through the same endpoint.
func (c *Client) Confirm(id string, value bool, date time.Time) error {
	body := confirmRequest{
		TechnicalName: id,
		Value:         value,
		Date:          date.Format("2006-01-02"),
	}
	if err := c.Post("/api/confirm", body, nil); err != nil {
		return fmt.Errorf("failed to confirm task %s: %w", id, err)
	}
	return nil
}

// numberDiffRequest is the payload for numeric-update commits.
type numberDiffRequest struct {
	TechnicalName string  `json:"technical_name"`
	Value         float64 `json:"value"`
	Date          string  `json:"date"`
}

// SubmitValue records a new logged value for a numberDiff-kind task.
func (c *Client) SubmitValue(id string, value float64, date time.Time) error {
	body := numberDiffRequest{
		TechnicalName: id,
		Value:         value,
		Date:          date.Format("2006-01-02"),
	}
	if err := c.Post("/api/number-diff", body, nil); err != nil {
		return fmt.Errorf("failed to submit value for task %s: %w", id, err)
	}
	return nil
}
