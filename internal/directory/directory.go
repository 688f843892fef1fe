package directory

import (
	"fmt"

	"github.com/longwapps/leave-alert/internal/leave"
)

// Employee represents a single entry of the employee directory.
// The ID is the opaque identifier shared with the HR portal (e.g. '0005', interns prefixed 'I').
type Employee struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Team represents a named group of employees that notify each other about leaves
type Team struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// ManualLeave represents a leave declared directly in the roster for employees the HR portal
// does not track (or special cases). Half-day and time-window entries are single day only.
type ManualLeave struct {
	EmployeeID string `yaml:"employee_id"`
	FromDate   string `yaml:"from_date"`
	ToDate     string `yaml:"to_date"`
	Type       string `yaml:"type"`
	StartTime  string `yaml:"start_time"`
	EndTime    string `yaml:"end_time"`
}

// Index represents the externally supplied employee directory and team structure.
// It is read-only to the rest of the system.
type Index struct {
	Employees    map[string]*Employee
	Teams        []*Team
	ManualLeaves []*ManualLeave
}

// Lookup resolves an employee by their ID
func (index *Index) Lookup(id string) (*Employee, bool) {
	employee, ok := index.Employees[id]
	return employee, ok
}

// TeamsOf returns the teams the given employee is a member of, in declaration order
func (index *Index) TeamsOf(id string) []*Team {
	var teams []*Team
	for _, team := range index.Teams {
		for _, member := range team.Members {
			if member == id {
				teams = append(teams, team)
				break
			}
		}
	}
	return teams
}

// Validate checks the referential integrity of the roster and returns one error per team member
// ID that does not resolve in the employee directory. Unresolved IDs are a configuration defect
// to be reported by the caller; they never crash a run.
func (index *Index) Validate() []error {
	var errs []error
	for _, team := range index.Teams {
		for _, member := range team.Members {
			if _, ok := index.Employees[member]; !ok {
				errs = append(errs, fmt.Errorf("employee ID %q in team %q is not present in the employee directory", member, team.Name))
			}
		}
	}
	return errs
}

// ManualRecords converts the roster's manual leave declarations into ordinary leave records.
// Employee names are resolved through the directory; entries for unknown employees fall back to
// their raw ID as display name.
func (index *Index) ManualRecords() []*leave.Record {
	records := make([]*leave.Record, 0, len(index.ManualLeaves))
	for _, manual := range index.ManualLeaves {
		record := &leave.Record{
			EmployeeID:   manual.EmployeeID,
			EmployeeName: manual.EmployeeID,
			TypeName:     "Leave",
			FromDate:     manual.FromDate,
			ToDate:       manual.ToDate,
			Duration:     manualDurationType(manual.Type),
			StartTime:    manual.StartTime,
			EndTime:      manual.EndTime,
			Days:         1,
		}
		if record.ToDate == "" {
			record.ToDate = record.FromDate
		}
		if employee, ok := index.Lookup(manual.EmployeeID); ok {
			record.EmployeeName = employee.Name
		}
		records = append(records, record)
	}
	return records
}

// manualDurationType maps the roster's shorthand duration vocabulary onto the wire one
func manualDurationType(raw string) leave.DurationType {
	switch raw {
	case "morning":
		return leave.DurationHalfMorning
	case "afternoon":
		return leave.DurationHalfAfternoon
	case "time":
		return leave.DurationSpecifyTime
	default:
		return leave.DurationFullDay
	}
}
