package state

type Option func(session *Session)

// WithValues seeds the session
func WithValues(values map[string]interface{}) Option {
	return func(session *Session) {
		for k, v := range values {
			session.values[k] = v
		}
	}
}

// WithListeners attaches listeners to the created session.
func WithListeners(listeners ...Listener) Option {
	return func(session *Session) {
		session.listeners = append(session.listeners, listeners...)
	}
}
