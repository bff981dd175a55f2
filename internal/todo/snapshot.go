package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/ldr-go/internal/utils"
)

// SnapshotVersion is the interchange format version. Decode rejects
// anything else.
const SnapshotVersion = 1

// Snapshot is the JSON interchange form of both documents, used by
// export and import.
type Snapshot struct {
	Version int      `json:"version"`
	Todo    *File    `json:"todo"`
	Archive *Archive `json:"archive"`
}

// NewSnapshot bundles the documents for export. Nil slices and maps
// are normalized to empty ones so the encoded JSON always validates
// against the snapshot schema.
func NewSnapshot(file *File, archive *Archive) *Snapshot {
	f := *file
	if f.Tasks == nil {
		f.Tasks = []Task{}
	}
	a := *archive
	if a.Entries == nil {
		a.Entries = []ArchiveEntry{}
	}
	for i := range a.Entries {
		if a.Entries[i].Lists == nil {
			a.Entries[i].Lists = map[string][]Task{}
		}
	}
	return &Snapshot{Version: SnapshotVersion, Todo: &f, Archive: &a}
}

// Encode renders the snapshot as indented JSON with a trailing
// newline.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// SnapshotError reports schema violations in an imported snapshot,
// one "path: message" cause per violation.
type SnapshotError struct {
	Causes []string
}

func (e *SnapshotError) Error() string {
	if len(e.Causes) == 1 {
		return "invalid snapshot: " + e.Causes[0]
	}
	return fmt.Sprintf("invalid snapshot: %d schema violations", len(e.Causes))
}

// DecodeSnapshot validates data against the snapshot schema and
// unmarshals it. Schema violations come back as *SnapshotError with
// every cause listed, so a hand-edited snapshot reports all its
// problems at once.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	schema, err := compileSnapshotSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, &SnapshotError{Causes: collectSchemaCauses(ve)}
		}
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snapshot.Todo == nil {
		snapshot.Todo = NewFile(DefaultTitle)
	}
	if snapshot.Archive == nil {
		snapshot.Archive = NewArchive()
	}
	return &snapshot, nil
}

func compileSnapshotSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("snapshot.schema.json", strings.NewReader(snapshotSchema)); err != nil {
		return nil, fmt.Errorf("load snapshot schema: %w", err)
	}
	schema, err := compiler.Compile("snapshot.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}
	return schema, nil
}

// collectSchemaCauses flattens a validation error tree into leaf
// causes with dot paths.
func collectSchemaCauses(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		path := utils.JSONPointerToPath(ve.InstanceLocation)
		if path == "" {
			return []string{ve.Message}
		}
		return []string{path + ": " + ve.Message}
	}
	var causes []string
	for _, cause := range ve.Causes {
		causes = append(causes, collectSchemaCauses(cause)...)
	}
	return causes
}

const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "ldr snapshot",
  "type": "object",
  "required": ["version", "todo", "archive"],
  "additionalProperties": false,
  "properties": {
    "version": {"const": 1},
    "todo": {
      "type": "object",
      "required": ["title", "tasks"],
      "additionalProperties": false,
      "properties": {
        "title": {"type": "string", "minLength": 1},
        "tasks": {
          "type": "array",
          "maxItems": 1000,
          "items": {"$ref": "#/$defs/task"}
        }
      }
    },
    "archive": {
      "type": "object",
      "required": ["title", "entries"],
      "additionalProperties": false,
      "properties": {
        "title": {"type": "string", "minLength": 1},
        "entries": {
          "type": "array",
          "items": {"$ref": "#/$defs/entry"}
        }
      }
    }
  },
  "$defs": {
    "task": {
      "type": "object",
      "required": ["text"],
      "additionalProperties": false,
      "properties": {
        "text": {"type": "string", "minLength": 1, "maxLength": 500},
        "subtasks": {
          "type": "array",
          "maxItems": 26,
          "items": {"type": "string", "minLength": 1, "maxLength": 500}
        }
      }
    },
    "entry": {
      "type": "object",
      "required": ["date", "lists"],
      "additionalProperties": false,
      "properties": {
        "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
        "lists": {
          "type": "object",
          "additionalProperties": {
            "type": "array",
            "items": {"$ref": "#/$defs/task"}
          }
        }
      }
    }
  }
}`
