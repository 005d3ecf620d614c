package events

var DocumentGeneratedTopic = "DocumentGeneratedEvent"

// DocumentGenerated is published after a tailored document was stored as a draft.
type DocumentGenerated struct {
	ApplicationID string
	Company       string
	Role          string
	Layout        string
}

var DocumentEditedTopic = "DocumentEditedEvent"

// DocumentEdited is published when a quick edit changed a stored document.
type DocumentEdited struct {
	ApplicationID string
	Field         string
	HTML          string
}
