package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskboard/pkg/types"
)

func strPtr(s string) *string { return &s }

func statusPtr(s types.TaskStatus) *types.TaskStatus { return &s }

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantMsg string
	}{
		{"valid", "Write report", ""},
		{"exactly 200 chars", strings.Repeat("a", 200), ""},
		{"missing", "", "Title is required"},
		{"whitespace only", "   ", "Title cannot be empty"},
		{"too long", strings.Repeat("a", 201), "Title must be less than 200 characters"},
		{"too long after trim", "  " + strings.Repeat("a", 201) + "  ", "Title must be less than 200 characters"},
		{"padded but within limit", "  " + strings.Repeat("a", 200) + "  ", ""},
		{"multibyte within limit", strings.Repeat("あ", 200), ""},
		{"multibyte too long", strings.Repeat("あ", 201), "Title must be less than 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Title(tt.title)
			if tt.wantMsg == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "title", errs[0].Field)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}
}

func TestDescription(t *testing.T) {
	assert.Empty(t, Description(nil))
	assert.Empty(t, Description(strPtr("")))
	assert.Empty(t, Description(strPtr(strings.Repeat("d", 1000))))
	assert.Empty(t, Description(strPtr(strings.Repeat("あ", 1000))))

	errs := Description(strPtr(strings.Repeat("あ", 1001)))
	require.Len(t, errs, 1)
	assert.Equal(t, "Description must be less than 1000 characters", errs[0].Message)

	errs = Description(strPtr(strings.Repeat("d", 1001)))
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
	assert.Equal(t, "Description must be less than 1000 characters", errs[0].Message)
}

func TestDueDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")

	tests := []struct {
		name    string
		dueDate *string
		wantMsg string
	}{
		{"absent", nil, ""},
		{"tomorrow", strPtr(tomorrow), ""},
		{"today is not in the past", strPtr(today), ""},
		{"full timestamp", strPtr(time.Now().AddDate(0, 0, 7).Format(time.RFC3339)), ""},
		{"yesterday", strPtr(yesterday), "Due date cannot be in the past"},
		{"unparsable", strPtr("not-a-date"), "Invalid date format"},
		{"empty string", strPtr(""), "Invalid date format"},
		{"bad calendar date", strPtr("2026-13-45"), "Invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := DueDate(tt.dueDate)
			if tt.wantMsg == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "dueDate", errs[0].Field)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Empty(t, Status(types.StatusPending))
	assert.Empty(t, Status(types.StatusInProgress))
	assert.Empty(t, Status(types.StatusCompleted))

	errs := Status("")
	require.Len(t, errs, 1)
	assert.Equal(t, "Status is required", errs[0].Message)

	errs = Status("Done")
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid status value", errs[0].Message)
}

func TestID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantMsg string
	}{
		{"valid lowercase", "0f8fad5b-d9cb-469f-a165-70867728950e", ""},
		{"valid uppercase", "0F8FAD5B-D9CB-469F-A165-70867728950E", ""},
		{"missing", "", "ID is required"},
		{"blank", "   ", "ID is required"},
		{"not uuid shaped", "non-existent", "Invalid ID format"},
		{"wrong group lengths", "0f8fad5b-d9cb-469f-a165-708677", "Invalid ID format"},
		{"non-hex characters", "zf8fad5b-d9cb-469f-a165-70867728950e", "Invalid ID format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ID(tt.id)
			if tt.wantMsg == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "id", errs[0].Field)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}
}

func TestCreateTask(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		res := CreateTask(types.CreateTaskRequest{
			Title:  "Test Task",
			Status: types.StatusPending,
		})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("collects all field errors", func(t *testing.T) {
		res := CreateTask(types.CreateTaskRequest{
			Title:       "",
			Description: strPtr(strings.Repeat("d", 1001)),
			DueDate:     strPtr("garbage"),
			Status:      "Bogus",
		})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 4)
		assert.Equal(t, "title", res.Errors[0].Field)
		assert.Equal(t, "description", res.Errors[1].Field)
		assert.Equal(t, "dueDate", res.Errors[2].Field)
		assert.Equal(t, "status", res.Errors[3].Field)
	})

	t.Run("status is required on create", func(t *testing.T) {
		res := CreateTask(types.CreateTaskRequest{Title: "Test Task"})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Status is required", res.Errors[0].Message)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("empty payload is valid", func(t *testing.T) {
		res := UpdateTask(types.UpdateTaskRequest{})
		assert.True(t, res.Valid)
	})

	t.Run("absent fields are not validated", func(t *testing.T) {
		res := UpdateTask(types.UpdateTaskRequest{Status: statusPtr(types.StatusCompleted)})
		assert.True(t, res.Valid)
	})

	t.Run("explicitly empty title is rejected", func(t *testing.T) {
		res := UpdateTask(types.UpdateTaskRequest{Title: strPtr("")})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Title is required", res.Errors[0].Message)
	})

	t.Run("invalid status value", func(t *testing.T) {
		res := UpdateTask(types.UpdateTaskRequest{Status: statusPtr("Archived")})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Invalid status value", res.Errors[0].Message)
	})

	t.Run("past due date", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		res := UpdateTask(types.UpdateTaskRequest{DueDate: strPtr(yesterday)})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "Due date cannot be in the past", res.Errors[0].Message)
	})
}
