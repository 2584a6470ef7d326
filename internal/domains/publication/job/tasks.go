package job

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeViewRecorded is emitted when a publication is read.
const TypeViewRecorded = "publication:view_recorded"

type ViewRecordedPayload struct {
	PublicationID int64 `json:"publication_id"`
}

// NewViewRecordedTask builds the task enqueued by the read path.
func NewViewRecordedTask(publicationID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(ViewRecordedPayload{PublicationID: publicationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeViewRecorded, payload, asynq.Queue("low"), asynq.MaxRetry(3)), nil
}
