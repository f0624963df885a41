package landing

// Document is the landing page configuration.
// It is built once at startup and handed to every consumer by pointer;
// nothing mutates it afterwards.
type Document struct {
	// ─────────────────────────────
	// General
	// ─────────────────────────────

	// ImageBackground shows the background image when true.
	ImageBackground bool `json:"imageBackground" yaml:"imageBackground"`

	// OpenInNewTab makes every link open in a new browser tab.
	OpenInNewTab bool `json:"openInNewTab" yaml:"openInNewTab"`

	// TwelveHourFormat switches the clock to 12-hour display.
	TwelveHourFormat bool `json:"twelveHourFormat" yaml:"twelveHourFormat"`

	// ─────────────────────────────
	// Greetings (picked by time of day)
	// ─────────────────────────────

	GreetingMorning   string `json:"greetingMorning" yaml:"greetingMorning"`
	GreetingAfternoon string `json:"greetingAfternoon" yaml:"greetingAfternoon"`
	GreetingEvening   string `json:"greetingEvening" yaml:"greetingEvening"`
	GreetingNight     string `json:"greetingNight" yaml:"greetingNight"`

	// ─────────────────────────────
	// Lists
	// ─────────────────────────────

	// FirstListIcon and SecondListIcon are icon names resolved by the page's icon set.
	FirstListIcon  string `json:"firstListIcon" yaml:"firstListIcon"`
	SecondListIcon string `json:"secondListIcon" yaml:"secondListIcon"`

	Lists Lists `json:"lists" yaml:"lists"`
}

// Lists holds the two navigation lists. Order is display order.
type Lists struct {
	FirstList  []LinkEntry `json:"firstList" yaml:"firstList"`
	SecondList []LinkEntry `json:"secondList" yaml:"secondList"`
}

// LinkEntry is a single navigation item.
// Link is either an absolute URL or a site-relative path.
type LinkEntry struct {
	Name string `json:"name" yaml:"name"`
	Link string `json:"link" yaml:"link"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Lists = Lists{
		FirstList:  cloneEntries(d.Lists.FirstList),
		SecondList: cloneEntries(d.Lists.SecondList),
	}
	return &c
}

// Target returns the anchor target attribute for links on this page.
func (d *Document) Target() string {
	if d.OpenInNewTab {
		return "_blank"
	}
	return "_self"
}

// LinkCount returns the number of links across both lists.
func (d *Document) LinkCount() int {
	return len(d.Lists.FirstList) + len(d.Lists.SecondList)
}

// Normalize replaces nil lists with empty ones so encoders emit [] instead of null.
func (d *Document) Normalize() {
	if d.Lists.FirstList == nil {
		d.Lists.FirstList = []LinkEntry{}
	}
	if d.Lists.SecondList == nil {
		d.Lists.SecondList = []LinkEntry{}
	}
}

func cloneEntries(in []LinkEntry) []LinkEntry {
	if in == nil {
		return []LinkEntry{}
	}
	out := make([]LinkEntry, len(in))
	copy(out, in)
	return out
}
