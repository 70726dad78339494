package models

// Question is one answered prompt from the beta signup form. The payload is
// forwarded to the marketing upstream as-is, so Answer stays untyped.
type Question struct {
	Question string `json:"question"`
	Answer   any    `json:"answer"`
}
