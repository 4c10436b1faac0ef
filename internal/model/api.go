package model

// ValidationError is one entry of the 400 response body emitted by the
// path-parameter validation gate. The body is a bare {"errors":[...]}
// object without success/message keys; that inconsistency with the other
// error responses is part of the published contract, so clients should
// discriminate on status codes.
type ValidationError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}
