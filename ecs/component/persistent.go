package component

// Persistent entities survive a scene reload while KeepOnReload is set.
type Persistent struct {
	ID           string
	KeepOnReload bool
	// Pinned entities are never handed back to a scene.
	Pinned bool
}

var PersistentComponent = NewComponent[Persistent]()
