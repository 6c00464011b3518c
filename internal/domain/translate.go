package domain

import "fmt"

const (
	statusTemplate  = "Изменился статус проверки работы \"%s\". %s"
	failureTemplate = "Сбой в работе программы: %v"
)

// Extract pulls the tracked fields out of one homeworks entry.
func Extract(item any) (TrackedItem, error) {
	rec, ok := item.(map[string]any)
	if !ok {
		return TrackedItem{}, &SchemaError{Reason: "homework not a record"}
	}

	name, ok := rec["homework_name"].(string)
	if !ok {
		return TrackedItem{}, &SchemaError{Reason: "missing field", Field: "homework_name"}
	}

	status, ok := rec["status"].(string)
	if !ok {
		return TrackedItem{}, &SchemaError{Reason: "missing field", Field: "status"}
	}

	it := TrackedItem{Name: name, StatusCode: status}
	if v, ok := rec["current_date"]; ok {
		it.ObservedAt, it.HasObservedAt = asInt(v)
	}
	return it, nil
}

// Render builds the status-change notification for it.
func Render(it TrackedItem) (Notification, error) {
	verdict, err := Verdict(it.StatusCode)
	if err != nil {
		return Notification{}, err
	}
	return Notification{Text: fmt.Sprintf(statusTemplate, it.Name, verdict)}, nil
}

func FailureNotification(err error) Notification {
	return Notification{Text: fmt.Sprintf(failureTemplate, err)}
}
