package browse

import (
	"github.com/air-rights/explorer/config"
	"github.com/air-rights/explorer/parcel"
)

// Selection is the single-selection state shared by the map layer and the
// list panel.  Single=false is the Top-10 list view; Single=true shows only
// the selected parcel.  MapWindow flags that the list should be windowed to
// a box around the current viewport center.
type Selection struct {
	BBL       string
	Single    bool
	MapWindow bool
}

// Select makes p the selected parcel and moves the viewport to its anchor
// at the close-up zoom.  Map clicks and the list's locate button both come
// through here, so both input paths end in identical state.  No-op when the
// parcel has no usable id.
func (s *Selection) Select(p parcel.Parcel, v *Viewport) {
	if p.BBL == "" || p.BBL == "N/A" {
		return
	}

	s.BBL = p.BBL
	s.Single = true

	if lat, lon, ok := p.Anchor(); ok {
		v.FocusOnPoint(lat, lon, config.CloseUpZoom)
	}
}

// Clear returns to the Top-10 list view.  The viewport stays where it is.
func (s *Selection) Clear() {
	s.BBL = ""
	s.Single = false
	s.MapWindow = false
}

// RecenterFromMap keeps the list view but windows it by proximity to the
// current viewport center ("Update Top 10 from current map view").
func (s *Selection) RecenterFromMap() {
	s.Single = false
	s.MapWindow = true
}
