package event

// Topic identifies a class of events on the bus.
type Topic string

// Buffer content topics.
const (
	// TopicContentInserted is published when text is inserted into the buffer.
	TopicContentInserted Topic = "buffer.content.inserted"

	// TopicContentDeleted is published when text is deleted from the buffer.
	TopicContentDeleted Topic = "buffer.content.deleted"

	// TopicContentReplaced is published when text is replaced in the buffer.
	TopicContentReplaced Topic = "buffer.content.replaced"
)

// ContentInserted is published when text is inserted into the buffer.
type ContentInserted struct {
	// Offset is the byte offset where the text was inserted.
	Offset int

	// Text is the inserted text.
	Text string
}

// ContentDeleted is published when text is deleted from the buffer.
type ContentDeleted struct {
	// Start is the byte offset of the first deleted byte.
	Start int

	// End is the byte offset one past the last deleted byte.
	End int

	// Text is the deleted text.
	Text string
}

// ContentReplaced is published when a range of text is replaced.
type ContentReplaced struct {
	// Start is the byte offset of the first replaced byte.
	Start int

	// End is the byte offset one past the last replaced byte.
	End int

	// Text is the replacement text.
	Text string
}
