package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Position is an integer coordinate on the terrain grid. X grows to the
// right and Y grows downward, matching image pixel addressing.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type AgentRecord struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Motivation string   `json:"motivation"`
	Start      Position `json:"start"`
	Steps      int      `json:"steps"`
	Failed     bool     `json:"failed,omitempty"`
	FailStep   int      `json:"fail_step,omitempty"`
	FailReason string   `json:"fail_reason,omitempty"`
}

type RunSummary struct {
	VersionedRecord
	RunID        string        `json:"run_id"`
	CreatedAtUTC string        `json:"created_at_utc"`
	MapSource    string        `json:"map_source"`
	FOV          int           `json:"fov"`
	GrainCount   int           `json:"grain_count"`
	Iterations   int           `json:"iterations"`
	Agents       []AgentRecord `json:"agents"`
}

type TrajectoryRecord struct {
	VersionedRecord
	RunID   string     `json:"run_id"`
	AgentID string     `json:"agent_id"`
	Points  []Position `json:"points"`
}

type ExperienceRecord struct {
	VersionedRecord
	RunID       string       `json:"run_id"`
	AgentID     string       `json:"agent_id"`
	Experiences []Experience `json:"experiences"`
}
