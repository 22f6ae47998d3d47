package models

import "time"

// ItemRef is the short item summary embedded into booking views.
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookerRef is the short booker summary embedded into booking views.
type BookerRef struct {
	ID int64 `json:"id"`
}

// BookingView is a booking enriched with item and booker summaries.
type BookingView struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker BookerRef `json:"booker"`
}

// BookingRef is the adjacency info attached to an item view for its owner.
type BookingRef struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// CommentView is a comment with the author's display name resolved.
type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemView is an item projected with nearest bookings and comments.
// LastBooking and NextBooking are only populated for the item's owner.
type ItemView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   int64         `json:"requestId,omitempty"`
	LastBooking *BookingRef   `json:"lastBooking"`
	NextBooking *BookingRef   `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

// RequestView is an item request with the items created in response to it.
type RequestView struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []*Item   `json:"items"`
}
