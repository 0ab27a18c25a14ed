package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/telesign/apiclient/common"
	"github.com/tidwall/gjson"
)

// printResponse writes the outcome of an API call. A non-2xx response is
// reported through ErrAlreadyHandled so that the process exits non-zero.
func (o *options) printResponse(w io.Writer, res *common.Response, extra map[string]string) error {
	if o.jsonOutput {
		out := map[string]interface{}{
			"status_code": res.StatusCode,
			"ok":          res.OK,
			"body":        res.JSON,
		}
		for k, v := range extra {
			out[k] = v
		}

		if err := printJSON(w, out); err != nil {
			return err
		}
	} else {
		label := okLabel
		outcome := "OK"
		if !res.OK {
			label, outcome = errorLabel, "FAILED"
		}

		keyLabel.Fprint(w, "Status: ")
		label.Fprintf(w, "%d %s\n", res.StatusCode, outcome)

		for k, v := range extra {
			keyLabel.Fprintf(w, "%s: ", k)
			fmt.Fprintln(w, v)
		}

		fmt.Fprintln(w, prettyBody(res.Body))
	}

	if !res.OK {
		return ErrAlreadyHandled
	}

	return nil
}

func prettyBody(body string) string {
	if !gjson.Valid(body) {
		return body
	}
	return strings.TrimRight(gjson.Get(body, "@pretty").Raw, "\n")
}
