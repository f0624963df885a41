package landing

// Default returns the document shipped with the dashboard.
// Every call builds a fresh value.
func Default() *Document {
	return &Document{
		ImageBackground:  true,
		OpenInNewTab:     true,
		TwelveHourFormat: false,

		GreetingMorning:   "Good morning ☕",
		GreetingAfternoon: "Good afternoon 🍯",
		GreetingEvening:   "Good evening 😁",
		GreetingNight:     "Go to Sleep 🥱",

		FirstListIcon:  "home",
		SecondListIcon: "external-link",

		Lists: Lists{
			FirstList: []LinkEntry{
				{Name: "Attack Map", Link: "/map/"},
				{Name: "Cockpit", Link: "/cockpit.html"},
				{Name: "Cyberchef", Link: "/cyberchef/"},
				{Name: "Elasticvue", Link: "/elasticvue/"},
				{Name: "Kibana", Link: "/kibana/"},
				{Name: "Spiderfoot", Link: "/spiderfoot/"},
			},
			SecondList: []LinkEntry{
				{Name: "SecurityMeter", Link: "https://sicherheitstacho.eu"},
				{Name: "CyberPot @ GitHub", Link: "https://github.com/khulnasoft/cyberpot/"},
				{Name: "CyberPot ReadMe", Link: "https://github.com/khulnasoft/cyberpot/blob/master/README.md"},
			},
		},
	}
}
