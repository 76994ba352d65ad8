package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hopee-platform/hopee-backend/internal/models"
)

const (
	flushInterval = 5 * time.Second
	flushBatch    = 64
	queueDepth    = 512
)

// PGHandler is an slog.Handler that persists ERROR+ records into the
// system_logs table. Records go through a buffered channel and a single
// writer goroutine, so logging never blocks a request on the database; if
// the queue is full the record is dropped (stdout still has it via the
// sibling handler).
type PGHandler struct {
	db    *gorm.DB
	queue chan models.SystemLog
	done  chan struct{}
	attrs []slog.Attr
}

func NewPGHandler(db *gorm.DB) *PGHandler {
	h := &PGHandler{
		db:    db,
		queue: make(chan models.SystemLog, queueDepth),
		done:  make(chan struct{}),
	}
	go h.writer()
	return h
}

func (h *PGHandler) writer() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]models.SystemLog, 0, flushBatch)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := h.db.CreateInBatches(batch, flushBatch).Error; err != nil {
			slog.New(StdoutHandler()).Error("failed to flush system logs", "error", err, "count", len(batch))
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry := <-h.queue:
			batch = append(batch, entry)
			if len(batch) >= flushBatch {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-h.done:
			for {
				select {
				case entry := <-h.queue:
					batch = append(batch, entry)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Stop drains the queue and stops the writer.
func (h *PGHandler) Stop() {
	close(h.done)
}

// Enabled admits ERROR and above only.
func (h *PGHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *PGHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	for _, a := range h.attrs {
		absorb(&entry, a, extra)
	}
	record.Attrs(func(a slog.Attr) bool {
		absorb(&entry, a, extra)
		return true
	})
	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	select {
	case h.queue <- entry:
	default:
	}
	return nil
}

// absorb maps well-known attr keys onto typed columns; everything else lands
// in the Extra JSON blob.
func absorb(entry *models.SystemLog, a slog.Attr, extra map[string]interface{}) {
	switch a.Key {
	case "trace_id":
		entry.TraceID = a.Value.String()
	case "user_id":
		s := a.Value.String()
		entry.UserID = &s
	case "action":
		entry.Action = a.Value.String()
	case "error":
		entry.Error = a.Value.String()
	case "latency_ms":
		if f, ok := a.Value.Any().(float64); ok {
			entry.LatencyMs = int(math.Round(f))
		}
	default:
		extra[a.Key] = a.Value.Any()
	}
}

func (h *PGHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *PGHandler) WithGroup(string) slog.Handler {
	return h
}
