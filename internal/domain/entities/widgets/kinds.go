// Package widgets provides domain entities for interactive widget state:
// the closed widget-kind enumeration, configuration extracted from component
// nodes, and the pure state machines behind each widget's behavior.
package widgets

// Kind is the closed enumeration of interactive widget kinds. Dispatch on
// Kind replaces the duck-typed marker strings of the original builder.
type Kind int

const (
	KindUnknown Kind = iota
	KindCarousel
	KindInfiniteSlides
	KindTabs
	KindCountUp
	KindPageList
	KindLinkList
	KindContentList
	KindNavbar
	KindFAQ
)

// MarkerAttribute is the attribute flagging a widget's root element in both
// the component tree and the rendered HTML.
const MarkerAttribute = "data-widget"

// HydratedAttribute marks an element whose widget behavior is already
// mounted, guarding repeated hydration passes against double wiring.
const HydratedAttribute = "data-hydrated"

var markerToKind = map[string]Kind{
	"carousel":        KindCarousel,
	"infinite-slides": KindInfiniteSlides,
	"tabs":            KindTabs,
	"count-up":        KindCountUp,
	"page-list":       KindPageList,
	"link-list":       KindLinkList,
	"content-list":    KindContentList,
	"navbar":          KindNavbar,
	"faq":             KindFAQ,
}

var kindToMarker = map[Kind]string{
	KindCarousel:       "carousel",
	KindInfiniteSlides: "infinite-slides",
	KindTabs:           "tabs",
	KindCountUp:        "count-up",
	KindPageList:       "page-list",
	KindLinkList:       "link-list",
	KindContentList:    "content-list",
	KindNavbar:         "navbar",
	KindFAQ:            "faq",
}

// KindFromMarker resolves a DOM marker string to its Kind, KindUnknown when
// the marker names no known widget.
func KindFromMarker(marker string) Kind {
	return markerToKind[marker]
}

// Marker returns the DOM marker string for a Kind, "" for KindUnknown.
func (k Kind) Marker() string {
	return kindToMarker[k]
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if marker, ok := kindToMarker[k]; ok {
		return marker
	}
	return "unknown"
}

// IsList reports whether the kind is one of the paginated list widgets.
func (k Kind) IsList() bool {
	return k == KindPageList || k == KindLinkList || k == KindContentList
}
