package domain

// HomeContent is the editable copy on the Home tab. It is assembled from two
// fixed documents in the home collection: the welcome/next-meeting block and
// the mission block.
type HomeContent struct {
	WelcomeMessage string      `json:"welcomeMessage"`
	NextMeeting    TitledBlock `json:"nextMeeting"`
	Mission        TitledBlock `json:"mission"`
}

// TitledBlock is a heading plus body used by the Home tab sections.
type TitledBlock struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
