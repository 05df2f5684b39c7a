package models

// Classroom represents a physical room. The classroom ID is supplied by
// the caller on creation.
type Classroom struct {
	ClassroomID int64  `json:"classroom_id"`
	Building    string `json:"building"`
	RoomNumber  string `json:"room_number"`
	Capacity    int    `json:"capacity"`
}
