package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// With adds a key to the envelope and returns it.
func (e Envelope) With(key string, value any) Envelope {
	e[key] = value
	return e
}
