package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// jsonFileMode is FileMode's named-field JSON shape: {"kind":"absent"}
// or {"kind":"unix","mode":33188}.
type jsonFileMode struct {
	Kind string `json:"kind"`
	Mode uint32 `json:"mode,omitempty"`
}

func (m FileMode) toJSON() jsonFileMode {
	if m.Kind == ModeAbsent {
		return jsonFileMode{Kind: "absent"}
	}
	return jsonFileMode{Kind: "unix", Mode: m.Mode}
}

func (m *FileMode) fromJSON(j jsonFileMode) error {
	switch j.Kind {
	case "absent":
		*m = Absent
	case "unix":
		*m = Unix(j.Mode)
	default:
		return fmt.Errorf("record: unknown file mode kind %q", j.Kind)
	}
	return nil
}

func (m FileMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.toJSON()) }

func (m *FileMode) UnmarshalJSON(data []byte) error {
	var j jsonFileMode
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	return m.fromJSON(j)
}

// jsonSection is Section's named-field JSON shape, discriminated by
// "kind".
type jsonSection struct {
	Kind           string               `json:"kind"`
	Lines          []string             `json:"lines,omitempty"`
	ChangedLines   []SectionChangedLine `json:"changed_lines,omitempty"`
	ModeChecked    bool                 `json:"mode_checked,omitempty"`
	Mode           *FileMode            `json:"mode,omitempty"`
	BinaryChecked  bool                 `json:"binary_checked,omitempty"`
	OldDescription string               `json:"old_description,omitempty"`
	NewDescription string               `json:"new_description,omitempty"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	j := jsonSection{}
	switch s.Kind {
	case SectionUnchanged:
		j.Kind = "unchanged"
		j.Lines = s.Lines
	case SectionChanged:
		j.Kind = "changed"
		j.ChangedLines = s.ChangedLines
	case SectionFileMode:
		j.Kind = "file_mode"
		j.ModeChecked = s.ModeChecked
		j.Mode = &s.Mode
	case SectionBinary:
		j.Kind = "binary"
		j.BinaryChecked = s.BinaryChecked
		j.OldDescription = s.OldDescription
		j.NewDescription = s.NewDescription
	}
	return json.Marshal(j)
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var j jsonSection
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	switch j.Kind {
	case "unchanged":
		*s = NewUnchanged(j.Lines)
	case "changed":
		*s = NewChanged(j.ChangedLines)
	case "file_mode":
		mode := Absent
		if j.Mode != nil {
			mode = *j.Mode
		}
		*s = NewFileModeSection(j.ModeChecked, mode)
	case "binary":
		*s = NewBinarySection(j.BinaryChecked, j.OldDescription, j.NewDescription)
	default:
		return fmt.Errorf("record: unknown section kind %q", j.Kind)
	}
	return nil
}

// DumpStateJSON encodes a RecordState as the reference JSON dump used
// by the --dump-state debugging flag. Structs without json tags use
// their Go field names; FileMode and Section use the MarshalJSON
// methods above.
func DumpStateJSON(rs *RecordState) ([]byte, error) {
	return json.MarshalIndent(rs, "", "  ")
}

// LoadStateJSON is the inverse of DumpStateJSON, used by the
// --load-state debugging flag to replay a recorded state without
// re-diffing the filesystem.
func LoadStateJSON(data []byte) (*RecordState, error) {
	var rs RecordState
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, err
	}
	return &rs, nil
}

// DumpStateYAML is an alternate debug dump of RecordState, selected
// by --dump-format=yaml; JSON remains the reference encoding.
func DumpStateYAML(rs *RecordState) ([]byte, error) {
	return yaml.Marshal(rs)
}

// DumpStateTOML is an alternate debug dump of RecordState, selected
// by --dump-format=toml and encoded the way the toolchain writes its
// on-disk config files.
func DumpStateTOML(rs *RecordState) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(rs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
