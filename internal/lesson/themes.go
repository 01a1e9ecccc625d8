package lesson

// Theme is one entry of the topic catalog.
type Theme struct {
	ID      string `json:"id"`
	LabelEn string `json:"labelEn"`
	LabelZh string `json:"labelZh"`
	Style   string `json:"style"` // ornament color: red, silver, green, white, gold
}

var themes = []Theme{
	{ID: "gender", LabelEn: "Gender Equality", LabelZh: "性別平等", Style: "red"},
	{ID: "rights", LabelEn: "Human Rights", LabelZh: "人權", Style: "silver"},
	{ID: "env", LabelEn: "Environment", LabelZh: "環境", Style: "green"},
	{ID: "ocean", LabelEn: "Global Ocean", LabelZh: "海洋", Style: "white"},
	{ID: "morality", LabelEn: "Morality", LabelZh: "品德", Style: "gold"},
	{ID: "life", LabelEn: "Life", LabelZh: "生命", Style: "red"},
	{ID: "law", LabelEn: "Rule of Law", LabelZh: "法治", Style: "silver"},
	{ID: "tech", LabelEn: "Technology", LabelZh: "科技", Style: "white"},
	{ID: "info", LabelEn: "Information", LabelZh: "資訊", Style: "green"},
	{ID: "energy", LabelEn: "Energy", LabelZh: "能源", Style: "gold"},
	{ID: "security", LabelEn: "Security", LabelZh: "安全", Style: "silver"},
	{ID: "disaster", LabelEn: "Disaster Prevention", LabelZh: "防災", Style: "red"},
	{ID: "family", LabelEn: "Family Education", LabelZh: "家庭教育", Style: "gold"},
	{ID: "career", LabelEn: "Career Planning", LabelZh: "生涯規劃", Style: "white"},
	{ID: "culture", LabelEn: "Multiculturalism", LabelZh: "多元文化", Style: "red"},
	{ID: "literacy", LabelEn: "Reading Literacy", LabelZh: "閱讀素養", Style: "green"},
	{ID: "outdoor", LabelEn: "Outdoor Education", LabelZh: "戶外教育", Style: "gold"},
	{ID: "intl", LabelEn: "Intl. Education", LabelZh: "國際教育", Style: "silver"},
	{ID: "indigenous", LabelEn: "Indigenous Education", LabelZh: "原住民族教育", Style: "green"},
}

var themeIndex = func() map[string]Theme {
	m := make(map[string]Theme, len(themes))
	for _, t := range themes {
		m[t.ID] = t
	}
	return m
}()

// Themes returns the catalog in display order. The slice is a copy.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme finds a theme by ID.
func LookupTheme(id string) (Theme, bool) {
	t, ok := themeIndex[id]
	return t, ok
}
