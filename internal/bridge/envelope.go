// Package bridge implements the generic dispatch pipeline shared by every
// tool: lookup, validation, credential resolution, the single remote call
// and normalization of all outcomes into one envelope shape.
package bridge

// Envelope is the uniform result returned by every tool invocation. Data is
// populated only on success, Error is empty only on success, and Successful
// always equals Error == "".
type Envelope struct {
	Data       map[string]any `json:"data"`
	Error      string         `json:"error"`
	Successful bool           `json:"successful"`
}

func successEnvelope(payload map[string]any) Envelope {
	if payload == nil {
		payload = map[string]any{}
	}
	return Envelope{Data: payload, Error: "", Successful: true}
}

func failureEnvelope(message string) Envelope {
	return Envelope{Data: map[string]any{}, Error: message, Successful: false}
}
