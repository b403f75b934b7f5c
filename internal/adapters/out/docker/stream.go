package docker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
)

// decodeJSONMessages drains a pull, build or push stream. Each status line is
// forwarded to progress. An error message embedded in the stream is returned
// as domain.ErrImageStream even though the HTTP call itself succeeded.
func decodeJSONMessages(r io.Reader, progress out.ProgressFunc) error {
	dec := json.NewDecoder(r)
	for {
		var msg jsonmessage.JSONMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode engine stream: %w", err)
		}

		if msg.Error != nil && msg.Error.Message != "" {
			return fmt.Errorf("%w: %s", domain.ErrImageStream, msg.Error.Message)
		}
		if msg.ErrorMessage != "" {
			return fmt.Errorf("%w: %s", domain.ErrImageStream, msg.ErrorMessage)
		}

		if progress == nil {
			continue
		}
		if line := messageLine(&msg); line != "" {
			progress(line)
		}
	}
}

func messageLine(msg *jsonmessage.JSONMessage) string {
	if msg.Stream != "" {
		return strings.TrimRight(msg.Stream, "\n")
	}
	parts := make([]string, 0, 3)
	if msg.ID != "" {
		parts = append(parts, msg.ID+":")
	}
	if msg.Status != "" {
		parts = append(parts, msg.Status)
	}
	if msg.Progress != nil {
		if p := msg.Progress.String(); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
