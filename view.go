package weft

import "strconv"

// View is a declaration: a lightweight value describing what should be on
// screen. The application rebuilds its view tree every frame; the registry
// resolves each view to a long-lived Instance that carries state across
// frames.
type View interface {
	// Kind identifies the instance type this view resolves to. A path
	// that resolved to one kind cannot later resolve to another.
	Kind() string

	// CreateInstance constructs the instance for this view's first
	// appearance. The instance's private state is seeded from the view.
	CreateInstance() Instance
}

// Parent is the optional capability for views that declare child views.
type Parent interface {
	ChildViews() []View
}

// Keyed is the optional capability for views carrying a reconciliation
// key. Keyed siblings keep their instances across reorders.
type Keyed interface {
	ViewKey() string
}

// viewKey returns the view's key, or empty for unkeyed views.
func viewKey(v View) string {
	if k, ok := v.(Keyed); ok {
		return k.ViewKey()
	}
	return ""
}

// childPath derives the stable instance path for the i-th child view.
// Keyed children use their key so the path survives reorders; unkeyed
// children are identified by kind and position.
func childPath(parent string, v View, i int) string {
	if key := viewKey(v); key != "" {
		return parent + "/" + key
	}
	return parent + "/" + v.Kind() + "[" + strconv.Itoa(i) + "]"
}

// rootPath derives the path of the tree's root view.
func rootPath(v View) string {
	if key := viewKey(v); key != "" {
		return "/" + key
	}
	return "/" + v.Kind()
}
