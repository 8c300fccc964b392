package output

import "time"

// ErrorResponse is what a failed command prints in JSON mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// TimestampedResponse is embedded by listing responses.
type TimestampedResponse struct {
	GeneratedAt time.Time `json:"generated_at"`
}

// NewTimestamped stamps a response with the current time.
func NewTimestamped() TimestampedResponse {
	return TimestampedResponse{GeneratedAt: Timestamp()}
}

// VersionResponse is printed by version --json.
type VersionResponse struct {
	TimestampedResponse
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuiltAt   string `json:"built_at,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// PersonnelResponse lists the lab roster.
type PersonnelResponse struct {
	TimestampedResponse
	Personnel []PersonItem `json:"personnel"`
}

// PersonItem is one roster entry.
type PersonItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Clearance  int    `json:"clearance"`
	Department string `json:"department"`
}

// SectionsResponse lists the navigable sections.
type SectionsResponse struct {
	TimestampedResponse
	// Clearance is the level access was checked against, 0 when unchecked.
	Clearance int           `json:"clearance,omitempty"`
	Sections  []SectionItem `json:"sections"`
}

// SectionItem is one navigable section.
type SectionItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Clearance int    `json:"clearance"`
	Allowed   *bool  `json:"allowed,omitempty"`
}

// ExecResponse is one console command and its reply.
type ExecResponse struct {
	Command string `json:"command"`
	Output  string `json:"output"`
	Found   bool   `json:"found"`
	Clear   bool   `json:"clear,omitempty"`
}

// ConfigPathResponse reports the config location for config path and init.
type ConfigPathResponse struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Created bool   `json:"created,omitempty"`
}
