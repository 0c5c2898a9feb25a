package component

// RestartRequest is a marker component used to ask the restart machine to
// tear down and rebuild the scene. Systems create a short-lived entity
// carrying it.
type RestartRequest struct {
	Reason string
}

var RestartRequestComponent = NewComponent[RestartRequest]()
