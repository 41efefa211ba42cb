package inbound

import (
	"encoding/json"

	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

type InvocationResponse struct {
	Outcome entity.Outcome
}

func (r InvocationResponse) RawJSON() []byte {
	//nolint:errcheck // an int and a string always encode
	data, _ := json.Marshal(r.Outcome)
	return data
}
