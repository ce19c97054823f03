package httperr

// Response is the envelope the outermost middleware writes when a request
// dies before a handler produced a body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}
