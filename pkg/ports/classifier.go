package ports

// RequestClassifier labels the request type of an incoming envelope.
// It is treated as an opaque oracle: given the envelope, it returns the
// platform's discriminator (e.g. "IntentRequest", "LaunchRequest").
type RequestClassifier interface {
	RequestType(envelope map[string]any) string
}

// ClassifierFunc adapts a plain function to the RequestClassifier interface.
type ClassifierFunc func(envelope map[string]any) string

// RequestType calls f.
func (f ClassifierFunc) RequestType(envelope map[string]any) string {
	return f(envelope)
}
