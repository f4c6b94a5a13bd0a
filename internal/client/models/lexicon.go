package models

// CurrentLexicon is the vocabulary book the learner is working through.
type CurrentLexicon struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lexicon is a system wordbook as listed by the backend.
type Lexicon struct {
	ID          string   `json:"id"`
	Language    string   `json:"language"`
	BookName    string   `json:"bookName"`
	Description string   `json:"description"`
	CreateUser  string   `json:"createUser"`
	Words       []string `json:"words"`
	WordCount   int      `json:"wordCount"`
}

// Current returns the selection record for l.
func (l Lexicon) Current() CurrentLexicon {
	return CurrentLexicon{ID: l.ID, Name: l.BookName}
}
