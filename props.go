package weft

import (
	"reflect"
	"sort"
)

// Props carries an element node's visual attributes. Values should be
// small comparable types (Style, BorderStyle, strings, ints); diffing
// compares them with reflect.DeepEqual.
type Props map[string]any

// Prop keys the renderer understands. Custom views may define their own
// keys; unknown keys still participate in diffing.
const (
	// PropStyle styles a text node's content.
	PropStyle = "style"
	// PropBackground fills an element's rect with the given Style.
	PropBackground = "background"
	// PropBorder draws a box of the given BorderStyle around an element.
	PropBorder = "border"
	// PropBorderStyle styles the border characters.
	PropBorderStyle = "borderStyle"
	// PropBorderGradient colors the border with a Gradient instead of a
	// flat style.
	PropBorderGradient = "borderGradient"
	// PropTitle places a title in an element's top border.
	PropTitle = "title"

	// PropContent is the synthetic key reported when a text node's
	// content changes. It never appears in a Props map.
	PropContent = "content"
)

// GetStyle returns the Style stored under key.
func (p Props) GetStyle(key string) (Style, bool) {
	v, ok := p[key].(Style)
	return v, ok
}

// GetString returns the string stored under key.
func (p Props) GetString(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// GetInt returns the int stored under key.
func (p Props) GetInt(key string) (int, bool) {
	v, ok := p[key].(int)
	return v, ok
}

// GetBool returns the bool stored under key.
func (p Props) GetBool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}

// GetBorder returns the BorderStyle stored under key.
func (p Props) GetBorder(key string) (BorderStyle, bool) {
	v, ok := p[key].(BorderStyle)
	return v, ok
}

// GetGradient returns the Gradient stored under key.
func (p Props) GetGradient(key string) (Gradient, bool) {
	v, ok := p[key].(Gradient)
	return v, ok
}

// Equal returns true if both prop sets hold the same keys and values.
func (p Props) Equal(other Props) bool {
	return len(p.changedKeys(other)) == 0
}

// changedKeys returns the sorted set of keys whose values differ between
// the two prop sets, including keys present on only one side.
func (p Props) changedKeys(next Props) []string {
	var keys []string
	for k, v := range p {
		nv, ok := next[k]
		if !ok || !reflect.DeepEqual(v, nv) {
			keys = append(keys, k)
		}
	}
	for k := range next {
		if _, ok := p[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
