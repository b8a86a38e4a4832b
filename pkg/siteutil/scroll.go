package siteutil

const (
	ScrollTopThreshold = 300
	NavbarThreshold    = 50
)

// ScrollState is derived from the vertical scroll offset of the page.
type ScrollState struct {
	ShowScrollTop  bool
	NavbarScrolled bool
}

func ScrollStateAt(offsetY float64) ScrollState {
	return ScrollState{
		ShowScrollTop:  offsetY > ScrollTopThreshold,
		NavbarScrolled: offsetY > NavbarThreshold,
	}
}
