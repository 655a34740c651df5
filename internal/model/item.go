package model

// Todo is one entry of the list.
// ID is assigned once at creation and never changes; IsCompleted is written
// as false and not toggled by any operation yet.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}
