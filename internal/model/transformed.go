package model

import "time"

// TransformedCoinDesk combines one external price snapshot with the
// locally stored localized name for the coin the snapshot describes.
// UpdateTime is a local wall-clock time derived from the snapshot's
// ISO timestamp, or the call time when that timestamp is unusable.
type TransformedCoinDesk struct {
	Name          string
	LocalizedName string
	UpdateTime    time.Time
}
