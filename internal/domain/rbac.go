package domain

// EnforceRequest is the authorization question asked by middleware:
// may this employee perform action on resource?
type EnforceRequest struct {
	EmployeeID string
	Resource   string
	Action     string
}
