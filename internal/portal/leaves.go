package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/longwapps/leave-alert/internal/leave"
)

// defaultLimit is the pagination window requested when the caller does not specify one
const defaultLimit = 50

// LeaveQuery represents the filter parameters of a leave-requests query
type LeaveQuery struct {
	FromDate    string
	ToDate      string
	Statuses    []int
	LeaveTypeID int
	Limit       int
	Offset      int
}

// leaveListResponse represents the structure of the portal's leave-requests API response
type leaveListResponse struct {
	Data []*apiLeaveRequest     `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

// apiLeaveRequest represents a single leave request as returned by the portal API.
// Required fields: employee.employeeId and dates.fromDate. dates.toDate defaults to
// dates.fromDate, a missing durationType means a full day.
type apiLeaveRequest struct {
	Employee struct {
		EmployeeID string `json:"employeeId"`
		FirstName  string `json:"firstName"`
		MiddleName string `json:"middleName"`
		LastName   string `json:"lastName"`
	} `json:"employee"`
	LeaveType struct {
		Name string `json:"name"`
	} `json:"leaveType"`
	Dates struct {
		FromDate     string `json:"fromDate"`
		ToDate       string `json:"toDate"`
		DurationType *struct {
			Type string `json:"type"`
		} `json:"durationType"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	} `json:"dates"`
	NoOfDays float64 `json:"noOfDays"`
}

// FetchLeaves queries the portal's leave-requests API using the given session and returns the
// normalized record list.
//
// The endpoint's range filter is not guaranteed to be exact-day-precise at the boundaries, so
// filtering for a specific target day remains the caller's responsibility.
func (client *Client) FetchLeaves(ctx context.Context, session *Session, query LeaveQuery) ([]*leave.Record, error) {
	if query.ToDate == "" {
		query.ToDate = query.FromDate
	}
	if len(query.Statuses) == 0 {
		query.Statuses = []int{leave.StatusScheduled, leave.StatusTaken}
	}
	if query.Limit <= 0 {
		query.Limit = defaultLimit
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("fromDate", query.FromDate)
	params.Set("toDate", query.ToDate)
	params.Set("includeEmployees", "onlyCurrent")
	for _, status := range query.Statuses {
		params.Add("statuses[]", strconv.Itoa(status))
	}
	if query.LeaveTypeID > 0 {
		params.Set("leaveTypeId", strconv.Itoa(query.LeaveTypeID))
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL+"/api/v2/leave/employees/leave-requests?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Cookie", sessionCookieName+"="+session.Cookie)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cache-Control", "no-store, no-cache, must-revalidate")
	request.Header.Set("Referer", client.BaseURL+"/leave/viewLeaveList")
	request.Header.Set("User-Agent", client.UserAgent)

	response, err := client.follow.Do(request)
	if err != nil {
		return nil, fmt.Errorf("could not query the leave API: %w", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w (status %d)", ErrUnexpectedStatus, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read the leave API response: %w", err)
	}
	parsed := new(leaveListResponse)
	if err := json.Unmarshal(body, parsed); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}
	if parsed.Data == nil {
		return nil, fmt.Errorf("%w: missing 'data' field", ErrMalformedResponse)
	}

	records := make([]*leave.Record, 0, len(parsed.Data))
	for i, raw := range parsed.Data {
		record, err := normalizeLeaveRequest(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %s", ErrMalformedResponse, i, err.Error())
		}
		records = append(records, record)
	}
	return records, nil
}

// normalizeLeaveRequest validates a raw API leave request and converts it into a leave record,
// applying the documented field defaults
func normalizeLeaveRequest(raw *apiLeaveRequest) (*leave.Record, error) {
	if raw.Employee.EmployeeID == "" {
		return nil, fmt.Errorf("missing employee ID")
	}
	if raw.Dates.FromDate == "" {
		return nil, fmt.Errorf("missing from date")
	}

	name := raw.Employee.FirstName
	if raw.Employee.MiddleName != "" {
		name += " " + raw.Employee.MiddleName
	}
	name += " " + raw.Employee.LastName
	name = strings.TrimSpace(name)

	typeName := raw.LeaveType.Name
	if typeName == "" {
		typeName = "Leave"
	}

	durationType := ""
	if raw.Dates.DurationType != nil {
		durationType = raw.Dates.DurationType.Type
	}

	record := &leave.Record{
		EmployeeID:   raw.Employee.EmployeeID,
		EmployeeName: name,
		TypeName:     typeName,
		FromDate:     raw.Dates.FromDate,
		ToDate:       raw.Dates.ToDate,
		Duration:     leave.NormalizeDurationType(durationType),
		StartTime:    raw.Dates.StartTime,
		EndTime:      raw.Dates.EndTime,
		Days:         raw.NoOfDays,
	}
	if record.ToDate == "" {
		record.ToDate = record.FromDate
	}
	return record, nil
}
