package models

// CrosshairPreset is a curated crosshair profile code attributed to a pro player
type CrosshairPreset struct {
	ID      string           `json:"id"`
	Player  string           `json:"player"`
	Team    string           `json:"team"`
	Code    string           `json:"code"`
	Preview CrosshairPreview `json:"preview"`
}

// CrosshairPreview approximates how the code renders, used for list cards
type CrosshairPreview struct {
	Dot        bool `json:"dot"`
	LineLength int  `json:"lineLength"`
	Thickness  int  `json:"thickness"`
	Gap        int  `json:"gap"`
}
