package model

// OutputPayload is the raw byte stream recovered from an image. The content is
// whatever was embedded; interpreting it is up to the consumer.
type OutputPayload struct {
	Content []byte `json:"content"`
	Size    int    `json:"size"`
}
