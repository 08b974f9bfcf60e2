package log

const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldCommand   = "command"

	// Stores
	FieldDriver   = "driver"
	FieldHosts    = "hosts"
	FieldKeyspace = "keyspace"
	FieldDatabase = "database"
	FieldLocalDC  = "local_dc"
	FieldLatency  = "latency_ms"

	// Identifiers
	FieldUUID    = "uuid"
	FieldShortID = "short_id"
)
