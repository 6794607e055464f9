package domain

// Structured log field names shared by the dispatcher and the adapters.
const (
	FieldCommand       = "command"
	FieldState         = "state"
	FieldResourceKind  = "resource_kind"
	FieldResourceGroup = "resource_group"
	FieldName          = "name"
	FieldRequestID     = "request_id"
	FieldSubscription  = "subscription_id"
	FieldProvider      = "provider"
	FieldComponent     = "component"
)
