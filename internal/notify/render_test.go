package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longwapps/leave-alert/internal/dispatch"
	"github.com/longwapps/leave-alert/internal/leave"
)

func TestRender_Reminder(t *testing.T) {
	batch := &dispatch.Batch{
		Recipient:     "b@company.com",
		ReferenceDate: "2025-07-26",
		Mode:          dispatch.ModeReminder,
		Entries: []*leave.Record{
			{EmployeeID: "A", EmployeeName: "Alice Doe", TypeName: "Annual", FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: leave.DurationFullDay},
			{EmployeeID: "B", EmployeeName: "Bob Roe", TypeName: "Casual", FromDate: "2025-07-26", ToDate: "2025-07-26", Duration: leave.DurationHalfMorning},
		},
	}

	message, err := Render(batch)
	require.NoError(t, err)

	assert.Equal(t, "b@company.com", message.To)
	assert.Equal(t, "Reminder: Team Members on Leave Today - Saturday, July 26, 2025", message.Subject)
	assert.Contains(t, message.PlainBody, "are on leave today")
	assert.Contains(t, message.PlainBody, "- Alice Doe\n", "plain full-day same-day leave carries no duration")
	assert.Contains(t, message.PlainBody, "- Bob Roe - Half Day (Morning)\n")
	assert.Contains(t, message.PlainBody, "automated reminder email")
	assert.Contains(t, message.HTMLBody, "<strong>Alice Doe</strong>")
}

func TestRender_Notification(t *testing.T) {
	batch := &dispatch.Batch{
		Recipient:     "c@company.com",
		ReferenceDate: "2025-07-27",
		Mode:          dispatch.ModeNotification,
		Entries: []*leave.Record{
			{EmployeeID: "A", EmployeeName: "Alice Doe", TypeName: "Annual", FromDate: "2025-07-27", ToDate: "2025-07-30", Duration: leave.DurationFullDay, Days: 4},
		},
	}

	message, err := Render(batch)
	require.NoError(t, err)

	assert.Equal(t, "Notification: Upcoming Team Members on Leave", message.Subject)
	assert.Contains(t, message.PlainBody, "will be on leave starting Sunday, July 27, 2025")
	assert.Contains(t, message.PlainBody, "- Alice Doe (Annual - 4 day(s): Jul 27 - Jul 30)\n")
	assert.Contains(t, message.PlainBody, "automated notification email")
}

func TestRender_InvalidDate(t *testing.T) {
	batch := &dispatch.Batch{Recipient: "b@company.com", ReferenceDate: "26.07.2025", Mode: dispatch.ModeReminder}
	_, err := Render(batch)
	assert.Error(t, err)
}
