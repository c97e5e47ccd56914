package ui

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/service"
)

// LogMapWidget stands in for the tile-based map. It keeps the placed-marker
// table so add and remove are idempotent, as the board contract requires.
type LogMapWidget struct {
	mut     sync.Mutex
	logger  *slog.Logger
	markers map[uuid.UUID]struct{}
}

func NewLogMapWidget(logger *slog.Logger) *LogMapWidget {
	return &LogMapWidget{
		logger:  logger,
		markers: make(map[uuid.UUID]struct{}),
	}
}

func (w *LogMapWidget) Init(center domain.Location) {
	w.mut.Lock()
	w.markers = make(map[uuid.UUID]struct{})
	w.mut.Unlock()
	w.logger.Info("map initialized",
		slog.Float64("lat", center.Lat),
		slog.Float64("lon", center.Lon),
	)
}

func (w *LogMapWidget) AddMarker(id uuid.UUID, t domain.PostType, loc domain.Location, label string) service.MarkerHandle {
	w.mut.Lock()
	_, exists := w.markers[id]
	w.markers[id] = struct{}{}
	w.mut.Unlock()

	if !exists {
		w.logger.Info("marker placed",
			slog.String("post_id", id.String()),
			slog.String("type", string(t)),
			slog.String("label", label),
		)
	}
	return id
}

func (w *LogMapWidget) RemoveMarker(h service.MarkerHandle) {
	id, ok := h.(uuid.UUID)
	if !ok {
		return
	}
	w.mut.Lock()
	_, exists := w.markers[id]
	delete(w.markers, id)
	w.mut.Unlock()

	if exists {
		w.logger.Info("marker removed", slog.String("post_id", id.String()))
	}
}

func (w *LogMapWidget) MarkerCount() int {
	w.mut.Lock()
	defer w.mut.Unlock()
	return len(w.markers)
}
