package mrpack

import (
	"fmt"

	"github.com/goccy/go-json"
	version "github.com/hashicorp/go-version"
)

// ParseIndex decodes and validates a pack index document.
func ParseIndex(data []byte) (*Index, error) {
	var doc struct {
		Game          string                  `json:"game"`
		FormatVersion int                     `json:"formatVersion"`
		VersionID     string                  `json:"versionId"`
		Name          string                  `json:"name"`
		Summary       string                  `json:"summary"`
		Files         []File                  `json:"files"`
		Dependencies  map[DependencyID]string `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Files))
	for i, f := range doc.Files {
		field := fmt.Sprintf("files[%d]", i)
		if f.Path == "" {
			return nil, &ValidationError{Field: field + ".path", Reason: "empty path"}
		}
		if _, ok := seen[f.Path]; ok {
			return nil, &ValidationError{
				Field:  field + ".path",
				Reason: fmt.Sprintf("duplicate path %q", f.Path),
			}
		}
		seen[f.Path] = struct{}{}
		if !f.Hashes.decoded {
			return nil, &ValidationError{Field: field + ".hashes", Reason: "missing digests"}
		}
		if len(f.Downloads) <= 0 {
			return nil, &ValidationError{Field: field + ".downloads", Reason: "no download URLs"}
		}
		if f.Size < 0 {
			return nil, &ValidationError{Field: field + ".fileSize", Reason: "negative size"}
		}
		if env := f.Env; env != nil {
			if !env.Client.valid() || !env.Server.valid() {
				return nil, &ValidationError{
					Field:  field + ".env",
					Reason: fmt.Sprintf("unknown requirement %q/%q", env.Client, env.Server),
				}
			}
		}
	}

	deps := make(map[DependencyID]*version.Version, len(doc.Dependencies))
	for id, raw := range doc.Dependencies {
		v, err := version.NewVersion(raw)
		if err != nil {
			return nil, &ValidationError{
				Field:  fmt.Sprintf("dependencies[%s]", id),
				Reason: err.Error(),
			}
		}
		deps[id] = v
	}

	return &Index{
		Game:          doc.Game,
		FormatVersion: doc.FormatVersion,
		VersionID:     doc.VersionID,
		Name:          doc.Name,
		Summary:       doc.Summary,
		Files:         doc.Files,
		Dependencies:  deps,
	}, nil
}
