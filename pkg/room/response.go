package room

// Response is a message sent to a subscribed client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Context string      `json:"context,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PayloadIn is a message received from a subscribed client
type PayloadIn struct {
	Action  string `json:"action"`
	Amount  int    `json:"amount"`
	Context string `json:"context"`
}

// OK returns a response acknowledging the message with the given context
func OK(ctx string) *Response {
	return &Response{
		Key:     "ok",
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newStateResponse(data interface{}) *Response {
	return &Response{
		Key:  "tableState",
		Data: data,
	}
}
