package util

// Envelope is the JSON object every handler responds with.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

func Message(message string) Envelope {
	return Envelope{"message": message}
}

// List wraps items under key together with their count.
func List[T any](key string, items []T) Envelope {
	return Envelope{key: items, "count": len(items)}
}
