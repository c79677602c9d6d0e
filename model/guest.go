package model

type GuestCollection string

const (
	GuestNotes  GuestCollection = "notes"
	GuestTasks  GuestCollection = "tasks"
	GuestIdeas  GuestCollection = "ideas"
	GuestEvents GuestCollection = "events"
)

// GuestCollections is the fixed set of collections a guest session can hold,
// in the order the sync merger processes them.
var GuestCollections = []GuestCollection{GuestNotes, GuestTasks, GuestIdeas, GuestEvents}

// GuestData is the full contents of a guest session's holding area.
// Entities carry locally generated identifiers and no owner.
type GuestData struct {
	Notes  []*Note  `json:"notes"`
	Tasks  []*Task  `json:"tasks"`
	Ideas  []*Idea  `json:"ideas"`
	Events []*Event `json:"events"`
}

// IsEmpty reports whether the guest session holds no entities at all.
func (d *GuestData) IsEmpty() bool {
	return len(d.Notes) == 0 && len(d.Tasks) == 0 && len(d.Ideas) == 0 && len(d.Events) == 0
}
