package storage

import (
	"encoding/json"
	"errors"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeRunSummary(s model.RunSummary) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeRunSummary(data []byte) (model.RunSummary, error) {
	var summary model.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return model.RunSummary{}, err
	}
	if err := checkVersion(summary.VersionedRecord); err != nil {
		return model.RunSummary{}, err
	}
	return summary, nil
}

func EncodeTrajectory(t model.TrajectoryRecord) ([]byte, error) {
	return json.Marshal(t)
}

func DecodeTrajectory(data []byte) (model.TrajectoryRecord, error) {
	var trajectory model.TrajectoryRecord
	if err := json.Unmarshal(data, &trajectory); err != nil {
		return model.TrajectoryRecord{}, err
	}
	if err := checkVersion(trajectory.VersionedRecord); err != nil {
		return model.TrajectoryRecord{}, err
	}
	return trajectory, nil
}

func EncodeExperiences(r model.ExperienceRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeExperiences(data []byte) (model.ExperienceRecord, error) {
	var record model.ExperienceRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.ExperienceRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.ExperienceRecord{}, err
	}
	return record, nil
}

// Stamp sets the current schema and codec versions on a record about to be
// persisted.
func Stamp() model.VersionedRecord {
	return model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion}
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
