package entity

// ContentTypeCSV is the content type every accepted file is stored with.
const ContentTypeCSV = "text/csv"

// Object is a stored file as seen by the sink.
type Object struct {
	Key         string
	Body        []byte
	ContentType string
}
