package domain

// Item is one entry of the list. ID is assigned by the server.
type Item struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// MaxTextLength bounds Item.Text after trimming.
const MaxTextLength = 500
