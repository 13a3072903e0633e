package types

type ApiError struct {
	Context map[string]string `json:"context,omitempty" description:"Context of the error. Usually used for validation error contexts"`
	Message string            `json:"message" description:"Message of the error"`
}

// ActionResult is the uniform response contract for every mutating
// dashboard action (home section actions and plugin actions alike).
type ActionResult struct {
	Ok      bool   `json:"ok" description:"Whether the action succeeded"`
	Message string `json:"message,omitempty" description:"Human-readable outcome of the action"`
	Refresh bool   `json:"refresh,omitempty" description:"Whether the client should re-fetch overview/home/plugin data"`
	Data    any    `json:"data,omitempty" description:"Any extra data the action wants to surface to the client"`
}
