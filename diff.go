package weft

import (
	"sort"

	"github.com/weftui/weft/internal/debug"
)

// Diff compares two frame trees and returns the patches that transform
// the screen from old to new. Either tree may be nil: a nil old inserts
// the new tree, a nil new removes the old one. Identical trees produce
// nil.
//
// Children match positionally unless siblings carry keys, in which case
// they pair by key and survive reorders. A child list with a duplicated
// key cannot be reconciled; the containing node is replaced wholesale and
// the problem is recorded in the debug log.
func Diff(old, new *Node) []Patch {
	d := &differ{}
	d.diffNodes(old, new)
	for _, err := range d.errs {
		debug.Log("diff: %v", err)
	}
	return d.patches
}

type differ struct {
	patches []Patch
	errs    []error
}

func (d *differ) diffNodes(old, new *Node) {
	switch {
	case old == nil && new == nil:
		return
	case old == nil:
		d.patches = append(d.patches, InsertNode{Node: new})
		return
	case new == nil:
		d.patches = append(d.patches, RemoveNode{Node: old})
		return
	}

	// A different kind or tag in the same slot is a different thing
	// entirely; replace the subtree.
	if old.Kind != new.Kind || old.Tag != new.Tag {
		d.patches = append(d.patches, ReplaceNode{Old: old, New: new})
		return
	}

	d.diffSame(old, new)
}

// diffSame diffs two nodes already known to share kind and tag.
func (d *differ) diffSame(old, new *Node) {
	keyed := hasKeys(old.Children) || hasKeys(new.Children)
	if keyed {
		if key, tag := duplicateKey(old, new); key != "" {
			d.errs = append(d.errs, &DiffError{Key: key, Tag: tag})
			d.patches = append(d.patches, ReplaceNode{Old: old, New: new})
			return
		}
	}

	keys := old.Props.changedKeys(new.Props)
	if old.Kind == NodeText && old.Content != new.Content {
		keys = append(keys, PropContent)
		sort.Strings(keys)
	}
	switch {
	case len(keys) > 0:
		d.patches = append(d.patches, UpdateProps{Old: old, New: new, Keys: keys})
	case old.Rect != new.Rect || old.ClipRect != new.ClipRect:
		d.patches = append(d.patches, MoveNode{Old: old, New: new})
	}

	if keyed {
		d.diffKeyed(old, new)
	} else {
		d.diffPositional(old, new)
	}
}

// diffPositional pairs children slot by slot; length differences become
// removals and insertions at the tail.
func (d *differ) diffPositional(old, new *Node) {
	n := min(len(old.Children), len(new.Children))
	for i := 0; i < n; i++ {
		d.diffNodes(old.Children[i], new.Children[i])
	}
	for _, c := range old.Children[n:] {
		d.patches = append(d.patches, RemoveNode{Node: c})
	}
	for _, c := range new.Children[n:] {
		d.patches = append(d.patches, InsertNode{Node: c})
	}
}

// childKey is a child's reconciliation identity: its explicit key when
// set, otherwise its position among unkeyed siblings.
type childKey struct {
	key string
	idx int
}

// diffKeyed pairs children by identity so reorders keep their subtrees.
// A paired child whose rect moved produces a MoveNode through the normal
// node diff; unmatched children are inserted or removed. Callers have
// already ruled out duplicate keys.
func (d *differ) diffKeyed(old, new *Node) {
	oldIndex := make(map[childKey]int, len(old.Children))
	unkeyed := 0
	for i, c := range old.Children {
		ck := childKey{key: c.Key}
		if c.Key == "" {
			ck.idx = unkeyed
			unkeyed++
		}
		oldIndex[ck] = i
	}

	matched := make([]bool, len(old.Children))
	unkeyed = 0
	for _, nc := range new.Children {
		ck := childKey{key: nc.Key}
		if nc.Key == "" {
			ck.idx = unkeyed
			unkeyed++
		}
		if oi, ok := oldIndex[ck]; ok {
			matched[oi] = true
			d.diffNodes(old.Children[oi], nc)
		} else {
			d.patches = append(d.patches, InsertNode{Node: nc})
		}
	}

	for i, oc := range old.Children {
		if !matched[i] {
			d.patches = append(d.patches, RemoveNode{Node: oc})
		}
	}
}

// hasKeys reports whether any child carries an explicit key.
func hasKeys(children []*Node) bool {
	for _, c := range children {
		if c.Key != "" {
			return true
		}
	}
	return false
}

// duplicateKey scans both child lists for a key used by two siblings.
// It returns the offending key and the parent's tag, or empty strings.
func duplicateKey(old, new *Node) (string, string) {
	for _, parent := range []*Node{old, new} {
		seen := make(map[string]bool, len(parent.Children))
		for _, c := range parent.Children {
			if c.Key == "" {
				continue
			}
			if seen[c.Key] {
				return c.Key, parent.Tag
			}
			seen[c.Key] = true
		}
	}
	return "", ""
}
