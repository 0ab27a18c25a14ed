package common

import (
	"fmt"

	"github.com/moogar0880/problems"
)

type ProblemError struct {
	problems.DefaultProblem
}

func (o *ProblemError) Error() string {
	return fmt.Sprintf("%d %s: %s", o.ProblemStatus(), o.ProblemTitle(), o.Detail)
}

// CheckResponse turns a Response into an error for callers that want to
// treat unexpected status codes as failures. With no expected codes, any
// 2xx status is accepted.
func CheckResponse(res *Response, expected ...int) error {
	if len(expected) == 0 && res.OK {
		return nil
	}

	for _, exp := range expected {
		if res.StatusCode == exp {
			return nil
		}
	}

	if prob := res.Problem(); prob != nil {
		return prob
	}

	return fmt.Errorf("unexpected HTTP response code %d", res.StatusCode)
}
