package naming

import (
	"fmt"
	"strings"
)

// AssetFile is a parsed test-case filename. Filenames are '#'-separated with
// three recognized shapes:
//
//	prefix#tcid#suffix.json                       (3 segments)
//	prefix#tcid#edit#suffix.json                  (4 segments)
//	prefix#tcid#edit#code#suffix.json             (5 segments, canonical)
type AssetFile struct {
	Name         string
	Segments     int
	Prefix       string
	TCID         string
	EditID       string // empty for 3-segment names
	ResponseCode string // empty except 5-segment names
	RawSuffix    string
	MappedSuffix string
}

// ClassifyAsset parses a filename into its segments. Non-.json files and
// names with an unrecognized segment count return ErrUnrecognized.
func ClassifyAsset(name string) (AssetFile, error) {
	base, ok := strings.CutSuffix(name, ".json")
	if !ok {
		return AssetFile{}, fmt.Errorf("%w: %s", ErrUnrecognized, name)
	}
	parts := strings.Split(base, "#")

	f := AssetFile{Name: name, Segments: len(parts)}
	switch len(parts) {
	case 3:
		f.Prefix, f.TCID, f.RawSuffix = parts[0], parts[1], parts[2]
	case 4:
		f.Prefix, f.TCID, f.EditID, f.RawSuffix = parts[0], parts[1], parts[2], parts[3]
	case 5:
		f.Prefix, f.TCID, f.EditID, f.ResponseCode, f.RawSuffix =
			parts[0], parts[1], parts[2], parts[3], parts[4]
	default:
		return AssetFile{}, fmt.Errorf("%w: %s", ErrUnrecognized, name)
	}
	f.MappedSuffix = MapSuffix(f.RawSuffix)
	return f, nil
}

// ValidateAgainst checks a canonical 5-segment name against the model it was
// found under. Shorter shapes carry no response code and are accepted without
// checking, even when a 4-segment edit identifier disagrees.
func (f AssetFile) ValidateAgainst(editID, responseCode string) error {
	if f.Segments != 5 {
		return nil
	}
	if f.EditID == editID && f.ResponseCode == responseCode {
		return nil
	}
	return &ParameterMismatchError{
		Filename:         f.Name,
		FileEditID:       f.EditID,
		FileResponseCode: f.ResponseCode,
		WantEditID:       editID,
		WantResponseCode: responseCode,
	}
}

// CanonicalName builds the 5-segment target name for this file under a model
// with the given codes. A file already in canonical shape keeps its name.
func (f AssetFile) CanonicalName(editID, responseCode string) string {
	if f.Segments == 5 {
		return f.Name
	}
	return fmt.Sprintf("%s#%s#%s#%s#%s.json",
		f.Prefix, f.TCID, editID, responseCode, f.MappedSuffix)
}
