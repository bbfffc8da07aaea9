package editor

// NewWithEnv creates an Editor with a fake environment.
func NewWithEnv(e *Editor, env map[string]string) *Editor {
	e.getenv = func(key string) string { return env[key] }
	return e
}
