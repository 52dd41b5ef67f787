package weft

import "fmt"

// ConfigurationError reports a declaration applied to an instance of a
// different kind at the same path. It is a programming error in the
// embedding application and surfaces out of Registry.GetOrCreate; renaming
// the path or keying the declaration resolves it.
type ConfigurationError struct {
	Path string // instance path the declaration resolved to
	Want string // kind the instance was created with
	Got  string // kind of the offending declaration
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("declaration kind %q does not match existing instance kind %q at path %q", e.Got, e.Want, e.Path)
}

// DiffError reports a child list that cannot be reconciled because two
// siblings carry the same key. The diff recovers by replacing the whole
// parent subtree; the error is recorded in the debug log.
type DiffError struct {
	Key string // the duplicated key
	Tag string // tag of the parent element, empty for other kinds
}

func (e *DiffError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("duplicate child key %q under element %q", e.Key, e.Tag)
	}
	return fmt.Sprintf("duplicate child key %q", e.Key)
}
