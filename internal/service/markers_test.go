package service_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/service"
	mock_service "github.com/Ravishrk124/helpnet.in/internal/service/mocks"
)

func markerPost(t domain.PostType, createdAt time.Time) domain.Post {
	return domain.Post{
		ID:        uuid.New(),
		Type:      t,
		Text:      "marker text",
		Location:  domain.Location{Lat: 28.61, Lon: 77.21},
		CreatedAt: createdAt,
	}
}

func plainLabel(p domain.Post) string { return string(p.Type) }

func TestMarkerSync_AddsOncePerPost(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := markerPost(domain.PostNeed, now)

	widget := mock_service.NewMockMapWidget(ctrl)
	widget.EXPECT().AddMarker(p.ID, p.Type, p.Location, "need").
		Return(service.MarkerHandle(p.ID)).
		Times(1)

	sync := service.NewMarkerSync(widget)
	sync.Sync([]domain.Post{p}, domain.FilterAll, now, plainLabel)
	sync.Sync([]domain.Post{p}, domain.FilterAll, now, plainLabel)

	assert.True(t, sync.Shown(p.ID))
	assert.Equal(t, 1, sync.ShownCount())
}

func TestMarkerSync_RemovesExpired(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := markerPost(domain.PostNeed, created)

	widget := mock_service.NewMockMapWidget(ctrl)
	handle := service.MarkerHandle(p.ID)
	widget.EXPECT().AddMarker(p.ID, p.Type, p.Location, "need").Return(handle).Times(1)
	widget.EXPECT().RemoveMarker(handle).Times(1)

	sync := service.NewMarkerSync(widget)
	sync.Sync([]domain.Post{p}, domain.FilterAll, created.Add(time.Minute), plainLabel)
	assert.True(t, sync.Shown(p.ID))

	sync.Sync([]domain.Post{p}, domain.FilterAll, created.Add(31*time.Minute), plainLabel)
	assert.False(t, sync.Shown(p.ID))
	assert.Equal(t, 0, sync.ShownCount())
}

func TestMarkerSync_FilterSwitchSwapsMarkers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	offer := markerPost(domain.PostOffer, now)
	alert := markerPost(domain.PostAlert, now)
	posts := []domain.Post{offer, alert}

	widget := mock_service.NewMockMapWidget(ctrl)
	widget.EXPECT().AddMarker(offer.ID, offer.Type, offer.Location, "offer").
		Return(service.MarkerHandle(offer.ID)).Times(1)
	widget.EXPECT().AddMarker(alert.ID, alert.Type, alert.Location, "alert").
		Return(service.MarkerHandle(alert.ID)).Times(1)
	widget.EXPECT().RemoveMarker(service.MarkerHandle(alert.ID)).Times(1)

	sync := service.NewMarkerSync(widget)
	sync.Sync(posts, domain.FilterAll, now.Add(time.Minute), plainLabel)
	assert.Equal(t, 2, sync.ShownCount())

	sync.Sync(posts, domain.FilterOffer, now.Add(time.Minute), plainLabel)
	assert.True(t, sync.Shown(offer.ID))
	assert.False(t, sync.Shown(alert.ID))
}
