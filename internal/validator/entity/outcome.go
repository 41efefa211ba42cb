package entity

import "net/http"

const (
	MsgNotCSV               = "Only CSV files are accepted."
	MsgEmpty                = "File is empty."
	MsgNotUTF8              = "File encoding is not UTF-8."
	MsgReadCSVPrefix        = "Error reading CSV: "
	MsgSchemaPrefix         = "Schema validation failed: "
	MsgUploadPrefix         = "Error uploading to S3: "
	MsgInvalidPayloadPrefix = "Invalid invocation payload: "
	MsgAccepted             = "File validated & uploaded."
)

// Outcome is the terminal result of one validation invocation. StatusCode
// reuses HTTP status numbers as domain codes; it is not a transport status.
type Outcome struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func Rejected(body string) Outcome {
	return Outcome{StatusCode: http.StatusBadRequest, Body: body}
}

func Failed(body string) Outcome {
	return Outcome{StatusCode: http.StatusInternalServerError, Body: body}
}

func Accepted() Outcome {
	return Outcome{StatusCode: http.StatusOK, Body: MsgAccepted}
}

// OK reports whether the file was stored.
func (o Outcome) OK() bool {
	return o.StatusCode == http.StatusOK
}
