// Package validate implements the field-level constraints for task
// payloads. It is the single canonical validation module: the HTTP handlers
// run it as the authoritative gate and the board UI runs the same functions
// as a pre-submit check, so the two sites cannot drift apart.
//
// Every validator is pure and returns its errors in priority order; the
// checks within one field are mutually exclusive, so a field yields at most
// one error.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Field length limits.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// uuidPattern matches the canonical textual UUID form: five groups of
// 8-4-4-4-12 hexadecimal digits, case-insensitive.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// dueDateLayouts are the accepted due-date formats, tried in order.
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

// Result is the outcome of validating a full payload. Valid is true iff
// Errors is empty.
type Result struct {
	Valid  bool
	Errors []types.ValidationError
}

// Title checks the title constraints: required, non-blank after trimming,
// and at most 200 characters after trimming.
func Title(title string) []types.ValidationError {
	switch {
	case title == "":
		return []types.ValidationError{{Field: "title", Message: "Title is required"}}
	case strings.TrimSpace(title) == "":
		return []types.ValidationError{{Field: "title", Message: "Title cannot be empty"}}
	case utf8.RuneCountInString(strings.TrimSpace(title)) > maxTitleLen:
		return []types.ValidationError{{Field: "title", Message: "Title must be less than 200 characters"}}
	}
	return nil
}

// Description checks the optional description length. A nil description is
// always valid.
func Description(description *string) []types.ValidationError {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > maxDescriptionLen {
		return []types.ValidationError{{Field: "description", Message: "Description must be less than 1000 characters"}}
	}
	return nil
}

// DueDate checks the optional due date: it must parse to a calendar date
// and must not fall strictly before today (local midnight). A nil due date
// is always valid.
func DueDate(dueDate *string) []types.ValidationError {
	if dueDate == nil {
		return nil
	}
	due, err := parseDueDate(*dueDate)
	if err != nil {
		return []types.ValidationError{{Field: "dueDate", Message: "Invalid date format"}}
	}
	if due.Before(today()) {
		return []types.ValidationError{{Field: "dueDate", Message: "Due date cannot be in the past"}}
	}
	return nil
}

// Status checks that a status is present and a member of the enumeration.
func Status(status types.TaskStatus) []types.ValidationError {
	switch {
	case status == "":
		return []types.ValidationError{{Field: "status", Message: "Status is required"}}
	case !status.Valid():
		return []types.ValidationError{{Field: "status", Message: "Invalid status value"}}
	}
	return nil
}

// ID checks that an identifier is present and matches the canonical UUID
// textual pattern.
func ID(id string) []types.ValidationError {
	switch {
	case strings.TrimSpace(id) == "":
		return []types.ValidationError{{Field: "id", Message: "ID is required"}}
	case !uuidPattern.MatchString(id):
		return []types.ValidationError{{Field: "id", Message: "Invalid ID format"}}
	}
	return nil
}

// CreateTask validates a full create payload. All four field validators
// run; status is required.
func CreateTask(req types.CreateTaskRequest) Result {
	var errs []types.ValidationError
	errs = append(errs, Title(req.Title)...)
	errs = append(errs, Description(req.Description)...)
	errs = append(errs, DueDate(req.DueDate)...)
	errs = append(errs, Status(req.Status)...)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// UpdateTask validates a partial update payload. Each field validator runs
// only when that field is present in the request. An explicitly empty title
// still fails with "Title is required": the field validators treat empty as
// absent regardless of create-vs-update.
func UpdateTask(req types.UpdateTaskRequest) Result {
	var errs []types.ValidationError
	if req.Title != nil {
		errs = append(errs, Title(*req.Title)...)
	}
	if req.Description != nil {
		errs = append(errs, Description(req.Description)...)
	}
	if req.DueDate != nil {
		errs = append(errs, DueDate(req.DueDate)...)
	}
	if req.Status != nil {
		errs = append(errs, Status(*req.Status)...)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// parseDueDate parses a due date string, trying the date-only layout before
// the full timestamp form. The result is truncated to its calendar date in
// local time so comparisons against today ignore the time of day.
func parseDueDate(value string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range dueDateLayouts {
		parsed, err = time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			y, m, d := parsed.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
		}
	}
	return time.Time{}, err
}

// today returns local midnight of the current day.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
