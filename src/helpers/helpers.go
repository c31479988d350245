package helpers

import (
	"io"

	. "github.com/remote-scripting-protocol/go-rsp/src/manual"

	"github.com/remote-scripting-protocol/go-rsp/src/json"
)

// DecodeManualResponse parses a discovery response carrying a manual.
func DecodeManualResponse(r io.ReadCloser) (Manual, error) {
	defer r.Close()
	var resp struct {
		Manual Manual `json:"manual"`
	}
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return Manual{}, err
	}
	return resp.Manual, nil
}
