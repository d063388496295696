package logging

// Capability is a composed logging capability: hold one by reference in
// any component that needs leveled structured logging, instead of
// inheriting logger behavior.
type Capability struct {
	logger *Logger
}

// NewCapability creates a capability logging under the given component name.
func NewCapability(logger *Logger, component string) *Capability {
	return &Capability{logger: logger.Named(component)}
}

// LogDebug logs a debug message with optional extra fields.
func (c *Capability) LogDebug(msg string, extra map[string]any) {
	c.logger.Debug(msg, extra)
}

// LogInfo logs an info message with optional extra fields.
func (c *Capability) LogInfo(msg string, extra map[string]any) {
	c.logger.Info(msg, extra)
}

// LogWarning logs a warning message with optional extra fields.
func (c *Capability) LogWarning(msg string, extra map[string]any) {
	c.logger.Warning(msg, extra)
}

// LogError logs an error message with optional extra fields.
func (c *Capability) LogError(msg string, extra map[string]any) {
	c.logger.Error(msg, extra)
}

// LogCritical logs a critical message with optional extra fields.
func (c *Capability) LogCritical(msg string, extra map[string]any) {
	c.logger.Critical(msg, extra)
}
