package validation

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/haagahelia/hidb-back/internal/model"
)

// Digits only: no sign, no decimal point, no surrounding whitespace.
var idPattern = regexp.MustCompile(`^[0-9]+$`)

// Result accumulates validator errors for one request. Validators never
// abort the chain; the gate inspects the collected errors afterwards.
type Result struct {
	errors []model.ValidationError
}

// Add records a validator error
func (r *Result) Add(e model.ValidationError) {
	r.errors = append(r.errors, e)
}

// OK reports whether no validator failed
func (r *Result) OK() bool {
	return len(r.errors) == 0
}

// Errors returns the accumulated errors in the order they were added
func (r *Result) Errors() []model.ValidationError {
	return r.errors
}

// Check is a single validator bound to one request
type Check func(r *http.Request, res *Result)

// IDParam validates that the named path parameter is a positive integer.
// Empty or whitespace-only values fail with "<field> is required"; anything
// that is not strictly digits with value > 0 fails with
// "<field> must be a positive integer".
func IDParam(field string) Check {
	return func(r *http.Request, res *Result) {
		raw := mux.Vars(r)[field]

		if strings.TrimSpace(raw) == "" {
			res.Add(fieldError(field, raw, field+" is required"))
			return
		}
		if !idPattern.MatchString(raw) {
			res.Add(fieldError(field, raw, field+" must be a positive integer"))
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			res.Add(fieldError(field, raw, field+" must be a positive integer"))
		}
	}
}

func fieldError(field, value, msg string) model.ValidationError {
	return model.ValidationError{
		Type:     "field",
		Value:    value,
		Msg:      msg,
		Path:     field,
		Location: "params",
	}
}

// Gate runs the checks for a route and short-circuits with a 400
// {"errors":[...]} body when any of them failed. The wrapped handler never
// runs in that case, so no data access happens for malformed parameters.
func Gate(next http.HandlerFunc, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res Result
		for _, check := range checks {
			check(r, &res)
		}
		if !res.OK() {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string][]model.ValidationError{
				"errors": res.Errors(),
			})
			return
		}
		next(w, r)
	}
}
