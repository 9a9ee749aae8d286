package config

// DefaultCategoryID is the id assigned to sections whose page names no
// parent category.
const DefaultCategoryID int64 = 25457035135005

// Default returns the built-in configuration for the Userology help center.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "Userology Help Center",
			Brand:       "Userology",
			Tagline:     "Get help with Userology",
			Welcome:     "Find comprehensive guides, tutorials, and answers to help you get the most out of Userology.",
			Copyright:   "© 2025 Userology. All rights reserved.",
			Logo:        "logo.png",
			Description: "Your complete guide to using Userology",
		},
		Attachments: AttachmentsConfig{
			URLPrefix: "https://support.userology.co/hc/article_attachments/",
			VideoPrefixes: []string{
				"https://www.youtube-nocookie.com/embed/",
				"https://www.youtube.com/embed/",
			},
			VideoContainer: "youtube-container",
		},
		Topics: TopicsConfig{
			Icons: map[string]string{
				"Study Setup":              "📝",
				"Interview Plan":           "💬",
				"Study Settings":           "⚙️",
				"Launch":                   "🚀",
				"Responses and Recordings": "🎥",
				"Settings and Admin":       "👥",
				"Results and Reports":      "📊",
			},
			Descriptions: map[string]string{
				"Study Setup":              "Learn how to create and configure your research studies",
				"Interview Plan":           "Set up discussion guides and interview sections",
				"Study Settings":           "Configure AI moderator, devices, permissions, and more",
				"Launch":                   "Recruit participants and preview your study",
				"Responses and Recordings": "Manage recordings, clips, and participant responses",
				"Settings and Admin":       "Manage your team and organization settings",
				"Results and Reports":      "Analyze qualitative and quantitative research data",
			},
			DefaultIcon: "📄",
		},
		Home: HomeConfig{PopularArticles: 6},
		Reconstruct: ReconstructConfig{
			DefaultCategoryID: DefaultCategoryID,
			DefaultUpdatedAt:  "2025-03-17",
			SectionNames: map[string]string{
				"study setup":              "Study Setup",
				"study settings":           "Study Settings",
				"interview plan":           "Interview Plan",
				"launch":                   "Launch",
				"responses and recordings": "Responses and Recordings",
				"settings and admin":       "Settings and Admin",
				"results and reports":      "Results and Reports",
			},
			DefaultCategories: []NamedRecord{
				{ID: DefaultCategoryID, Name: "General"},
			},
		},
		Related: RelatedConfig{
			Articles: map[int64][]RelatedLink{
				25456988151453: {
					{ArticleID: 25561782334749, Topic: "Interview Plan", Title: "What Is a Discussion Guide on Userology"},
					{ArticleID: 25562045316637, Topic: "Study Settings", Title: "Configuring the AI Moderator"},
					{ArticleID: 25562330763805, Topic: "Launch", Title: "Previewing Your Study"},
				},
				25561782334749: {
					{ArticleID: 25456988151453, Topic: "Study Setup", Title: "Creating your study on Userology"},
					{ArticleID: 25562292368669, Topic: "Interview Plan", Title: "Adding sections to your discussion guide"},
					{ArticleID: 25562045316637, Topic: "Study Settings", Title: "Configuring the AI Moderator"},
				},
			},
			Default: []RelatedLink{
				{ArticleID: 25561782334749, Topic: "Interview Plan", Title: "What Is a Discussion Guide on Userology"},
				{ArticleID: 25916497212701, Topic: "Results and Reports", Title: "Understanding Quantitative Results in Userology"},
				{ArticleID: 25562407594781, Topic: "Responses and Recordings", Title: "Types of responses in Userology"},
			},
		},
		Search: SearchConfig{ExcerptLength: 500},
	}
}
