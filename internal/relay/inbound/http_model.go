package inbound

import "encoding/json"

type UploadResponse struct {
	body json.RawMessage
}

func (r UploadResponse) RawJSON() []byte {
	return r.body
}
