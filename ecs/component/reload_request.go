package component

// ReloadRequest marks a short-lived entity asking for a freshly generated
// level without scoring a point.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]("reload_request")
