package tempo

import (
	"time"

	"github.com/rozsival/tyr-worklog-creator/pkg/dateutil"
)

// worklogStartHour is the fixed local start time for every created worklog.
const worklogStartHour = 9

// WorklogInput is the input object of the CreateWorklog mutation. One
// instance is built per selected day; comment, time, project and ticket are
// shared across a batch while Started differs per day.
type WorklogInput struct {
	Started         string `json:"started"`
	Comment         string `json:"comment"`
	TimeSpentString string `json:"timeSpentString"`
	Project         string `json:"project"`
	Ticket          string `json:"ticket"`
}

// NewWorklogInput builds the mutation input for a single day. The start
// timestamp is fixed at 09:00:00.000 local time on the target date.
func NewWorklogInput(day time.Time, comment, timeSpent, project, ticket string) WorklogInput {
	return WorklogInput{
		Started:         dateutil.FormatISO8601(dateutil.AtHour(day, worklogStartHour)),
		Comment:         comment,
		TimeSpentString: timeSpent,
		Project:         project,
		Ticket:          ticket,
	}
}

// Worklog is the success payload of the CreateWorklog mutation.
type Worklog struct {
	ID      string `json:"id"`
	TypeTag string `json:"__typename"`
}

// graphqlRequest is the wire shape of a GraphQL POST body.
type graphqlRequest struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
}

// graphqlResponse is the wire shape of a GraphQL response. Either Data or
// Errors is populated, never both; data.result must not be assumed present
// when errors exists.
type graphqlResponse struct {
	Data *struct {
		Result *Worklog `json:"result"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// GraphQLError is a single entry of a response's top-level errors list.
type GraphQLError struct {
	Message string `json:"message"`
}
