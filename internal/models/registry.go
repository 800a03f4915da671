package models

import "encoding/json"

// Exporter is implemented by all models that are part of the data export.
type Exporter interface {
	Export() (json.RawMessage, error)
}

// Registry contains an instance of every model included in the export.
// Credentials are deliberately absent, backups must not spread the
// plaintext password further.
var Registry = []Exporter{
	Obligation{},
	Payment{},
}
