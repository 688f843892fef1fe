package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRoster = `
employees:
  "0001":
    name: John Doe
    email: john.doe@company.com
  "0002":
    name: Jane Smith
    email: jane.smith@company.com
  "I001":
    name: Intern One
    email: intern1@company.com

teams:
  - name: Development Team
    members: ["0001", "0002", "I001"]
  - name: Management Team
    members: ["0001", "0002"]

manual_leaves:
  - employee_id: I001
    from_date: "2025-07-26"
    to_date: "2025-07-26"
    type: morning
`

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yml")
	require.NoError(t, os.WriteFile(path, []byte(testRoster), 0644))

	index, err := LoadRoster(path)
	require.NoError(t, err)

	require.Len(t, index.Employees, 3)
	employee, ok := index.Lookup("0001")
	require.True(t, ok)
	assert.Equal(t, "0001", employee.ID)
	assert.Equal(t, "John Doe", employee.Name)
	assert.Equal(t, "john.doe@company.com", employee.Email)

	require.Len(t, index.Teams, 2)
	assert.Equal(t, "Development Team", index.Teams[0].Name)
	assert.Equal(t, []string{"0001", "0002", "I001"}, index.Teams[0].Members)

	require.Len(t, index.ManualLeaves, 1)
	assert.Equal(t, "I001", index.ManualLeaves[0].EmployeeID)
	assert.Equal(t, "morning", index.ManualLeaves[0].Type)

	assert.Empty(t, index.Validate())
}

func TestLoadRoster_MissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
