package render

import (
	"encoding/json"

	"github.com/apimap/apimap/internal/surface"
)

// Artifact is the structured form of one project's surface map. Member
// fields equal to their zero value are omitted during marshalling, never
// emitted as null or zero, to keep the artifact small.
type Artifact struct {
	Summary surface.Summary    `json:"summary"`
	Files   []*surface.FileMap `json:"files"`
}

// JSON renders the surface map as an indented JSON document.
func JSON(files []*surface.FileMap, sum surface.Summary) ([]byte, error) {
	artifact := Artifact{Summary: sum, Files: files}
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ParseArtifact reparses a structured artifact back into the FileMap shape.
// Round-tripping reproduces every populated field.
func ParseArtifact(data []byte) (*Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}
